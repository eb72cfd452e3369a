package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theoremus-urban-solutions/routedesk/engine"
	"github.com/theoremus-urban-solutions/routedesk/utils"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	costStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// BuildText renders a view as styled terminal text
func (rb *responseBuilder) BuildText(v any) string {
	var b strings.Builder
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	case engine.Summary:
		b.WriteString(titleStyle.Render("Сводка") + "\n")
		fmt.Fprintf(&b, "Рейсов: %s\nГородов: %s\nВодителей: %s\nМаршрутов: %s\n",
			utils.FormatCount(t.TotalTrips), utils.FormatCount(t.TotalCities),
			utils.FormatCount(t.TotalDrivers), utils.FormatCount(t.TotalRoutes))
	case SearchView:
		b.WriteString(titleStyle.Render(t.Origin+" → "+t.Destination) + "\n")
		writeCards(&b, fmt.Sprintf("Точные совпадения (%d)", len(t.Exact)), t.Exact)
		writeCards(&b, fmt.Sprintf("Частичные совпадения (%d)", len(t.Partial)), t.Partial)
	case RouteDetail:
		writeRouteDetail(&b, t)
	case DriverDetail:
		writeDriverDetail(&b, t)
	case ListView[RouteCard]:
		writeListHeader(&b, "Маршруты", t.Query, t.Sort, t.Shown, t.Total)
		for _, c := range t.Items {
			writeCard(&b, c)
		}
		writeMore(&b, t.HasMore)
	case ListView[DriverCard]:
		writeListHeader(&b, "Водители", t.Query, t.Sort, t.Shown, t.Total)
		for _, c := range t.Items {
			writeDriverCard(&b, c)
		}
		writeMore(&b, t.HasMore)
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}
	return b.String()
}

func writeCards(b *strings.Builder, title string, cards []RouteCard) {
	b.WriteString(sectionStyle.Render(title) + "\n")
	if len(cards) == 0 {
		b.WriteString(mutedStyle.Render("  нет маршрутов") + "\n")
		return
	}
	for _, c := range cards {
		writeCard(b, c)
	}
}

func writeCard(b *strings.Builder, c RouteCard) {
	line := fmt.Sprintf("  %s  рейсов: %d  водителей: %d  ср. стоимость: %s",
		c.Route.Name, c.Stats.TripCount, c.DriverCount, costStyle.Render(utils.FormatAmount(c.Stats.AverageCost)))
	if c.Popular {
		line += " " + badgeStyle.Render("популярный")
	}
	b.WriteString(line + "\n")
}

func writeRouteDetail(b *strings.Builder, d RouteDetail) {
	b.WriteString(titleStyle.Render(d.Route.Name) + "\n")
	fmt.Fprintf(b, "Рейсов: %d\nВодителей: %d\nСр. стоимость: %s\nОбщая стоимость: %s\n",
		d.Stats.TripCount, d.DriverCount,
		costStyle.Render(utils.FormatAmount(d.Stats.AverageCost)),
		costStyle.Render(utils.FormatAmount(d.Stats.TotalCost)))
	if d.Stats.Estimated {
		b.WriteString(mutedStyle.Render("(оценка: нет данных о рейсах)") + "\n")
	}
	if len(d.Variants) > 0 {
		b.WriteString(sectionStyle.Render("Варианты маршрута") + "\n")
		for i, v := range d.Variants {
			stops := append([]string{v.Departure}, v.Intermediate...)
			stops = append(stops, v.Destination)
			fmt.Fprintf(b, "  %d. %s\n", i+1, strings.Join(stops, " → "))
		}
	}
	b.WriteString(sectionStyle.Render("Водители на маршруте") + "\n")
	if len(d.Drivers) == 0 {
		b.WriteString(mutedStyle.Render("  нет водителей") + "\n")
	}
	for _, drv := range d.Drivers {
		fmt.Fprintf(b, "  %s  %s\n", drv.FullName, mutedStyle.Render(drv.Phone))
	}
}

func writeDriverDetail(b *strings.Builder, d DriverDetail) {
	b.WriteString(titleStyle.Render(d.Driver.FullName) + "\n")
	fmt.Fprintf(b, "Телефон: %s\nМаршрутов (заявлено): %d\n", d.Driver.Phone, d.Driver.TotalRouteCount)
	fmt.Fprintf(b, "Рейсов: %d\nЗаработок: %s\nСр. стоимость рейса: %s\n",
		d.Financials.TotalTrips,
		costStyle.Render(utils.FormatAmount(d.Financials.TotalEarnings)),
		costStyle.Render(utils.FormatAmount(d.Financials.AvgTripCost)))
	if len(d.Routes) > 0 {
		b.WriteString(sectionStyle.Render("Доступные маршруты") + "\n")
		for _, r := range d.Routes {
			b.WriteString("  " + r + "\n")
		}
	}
	b.WriteString(sectionStyle.Render("Заработок по маршрутам") + "\n")
	if len(d.ByRoute) == 0 {
		b.WriteString(mutedStyle.Render("  нет данных о рейсах") + "\n")
	}
	for _, e := range d.ByRoute {
		fmt.Fprintf(b, "  %s  рейсов: %d  всего: %s  ср.: %s\n",
			e.Route, e.Count, utils.FormatAmount(e.TotalPrice), utils.FormatAmount(e.AvgPrice))
	}
}

func writeDriverCard(b *strings.Builder, c DriverCard) {
	line := fmt.Sprintf("  %s  %s  маршрутов: %d  заработок: %s",
		c.Driver.FullName, mutedStyle.Render(c.Driver.Phone), c.Driver.TotalRouteCount,
		costStyle.Render(utils.FormatAmount(c.Earnings)))
	if c.Top {
		line += " " + badgeStyle.Render("топ")
	}
	b.WriteString(line + "\n")
}

func writeListHeader(b *strings.Builder, title, query, order string, shown, total int) {
	b.WriteString(titleStyle.Render(title) + "\n")
	meta := fmt.Sprintf("показано %d из %d", shown, total)
	if query != "" {
		meta += fmt.Sprintf(", фильтр %q", query)
	}
	if order != "" {
		meta += ", сортировка " + order
	}
	b.WriteString(mutedStyle.Render(meta) + "\n")
}

func writeMore(b *strings.Builder, more bool) {
	if more {
		b.WriteString(mutedStyle.Render("  … ещё (--pages)") + "\n")
	}
}
