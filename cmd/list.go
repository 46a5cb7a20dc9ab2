package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/akontos/protokolo/internal/i18n"
	"github.com/akontos/protokolo/internal/registry"
	"github.com/akontos/protokolo/internal/registry/domain"
	"github.com/akontos/protokolo/internal/watcher"
)

var (
	listMonth    string
	listCategory string
	listPage     int
	listWatch    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registrations with optional filters",
	Long: `List one page of registrations, most recent first. Soft-deleted
entries are shown and marked, not hidden.

Examples:
  # Everything, first page
  protokolo list

  # A single month
  protokolo list --month 2026-08

  # One category, third page
  protokolo list --category signals-incoming --page 3

  # Keep the listing fresh while another terminal registers documents
  protokolo list --watch`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "filter by creation month (YYYY-MM)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	listCmd.Flags().IntVar(&listPage, "page", 1, "1-based result page")
	listCmd.Flags().BoolVar(&listWatch, "watch", false, "re-render when the database changes")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	filters := registry.Filters{Month: listMonth, Page: listPage}
	if listCategory != "" {
		category, err := domain.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		filters.Category = &category
	}

	service, cleanup, err := openRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	t := labels()
	if err := renderListing(cmd, service, filters, t); err != nil {
		return err
	}
	if !listWatch {
		return nil
	}

	w, err := watcher.New(watcher.DefaultConfig(cfg.DBPath()))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	for {
		select {
		case <-changes:
			fmt.Println()
			if err := renderListing(cmd, service, filters, t); err != nil {
				return err
			}
		case <-interrupt:
			return nil
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func renderListing(cmd *cobra.Command, service *registry.Service, filters registry.Filters, t *i18n.Catalog) error {
	registrations, err := service.List(cmd.Context(), filters)
	if err != nil {
		return err
	}

	title := lipgloss.NewStyle().Bold(true)
	header := lipgloss.NewStyle().Bold(true).Underline(true)
	deleted := lipgloss.NewStyle().Strikethrough(true).Faint(true)

	page := filters.Page
	if page < 1 {
		page = 1
	}
	fmt.Printf("%s (%s %d)\n", title.Render(t.Label("list.title")), t.Label("list.page"), page)

	if len(registrations) == 0 {
		fmt.Println(t.Label("list.noResults"))
		return nil
	}

	const rowFormat = "%-24s  %-10s  %-10s  %-12s  %-30s  %s"
	fmt.Println(header.Render(fmt.Sprintf(rowFormat,
		t.Label("list.column.category"),
		t.Label("list.column.protocol"),
		t.Label("list.column.draft"),
		t.Label("list.column.entryDate"),
		t.Label("list.column.offices"),
		t.Label("list.column.status"),
	)))

	for _, r := range registrations {
		offices := make([]string, 0, len(r.Offices()))
		for _, office := range r.Offices() {
			offices = append(offices, t.Label("office."+string(office)))
		}

		status := t.Label("status.active")
		if r.IsDeleted() {
			status = t.Label("status.deleted")
		}

		row := fmt.Sprintf(rowFormat,
			t.Label("category."+r.Category().Key()),
			r.ProtocolNumber(),
			r.DraftNumber(),
			r.Form().EntryDate,
			strings.Join(offices, ", "),
			status,
		)
		if r.IsDeleted() {
			row = deleted.Render(row)
		}
		fmt.Println(row)
	}
	return nil
}
