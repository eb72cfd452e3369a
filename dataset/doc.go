/*
Package dataset holds the immutable snapshot of the three loaded tables.

A Snapshot is built once per session and never mutated afterwards. Every
derived value (city index, matches, statistics, listings) is a pure function
of a snapshot, so callers may memoize results keyed by Snapshot.Version.

# Loading

The routes, drivers and trips tables are fetched and parsed in parallel.
A failure in one table does not block the others: the failed table is left
empty, the failure is logged, and Load returns the snapshot together with
the joined errors.

	snap, err := dataset.Load(ctx, fetcher, dataset.Sources{
	    Routes:  "data/routes.csv",
	    Drivers: "data/drivers.csv",
	    Trips:   "data/trips.csv",
	}, logger)
	if err != nil {
	    // snap is still usable; one or more tables are empty
	}

# Caching

A loaded snapshot can be written to disk with gob (SerializeSnapshotToFile)
and read back on the next start to skip parsing.
*/
package dataset
