package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/akontos/protokolo/internal/registry"
	"github.com/akontos/protokolo/internal/registry/domain"
)

var (
	createCategory  string
	createIssuer    string
	createRefNumber string
	createDocDate   string
	createSubject   string
	createEntryDate string
	createRecipient string
	createSIC       string
	createOffices   []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a document and assign its protocol number",
	Long: `Register a document under one of the six categories and print the
assigned protocol number. Outgoing categories additionally receive a draft
number from the shared outgoing sequence.

Categories: common-incoming, common-outgoing, signals-incoming,
signals-outgoing, confidential-incoming, confidential-outgoing.

Examples:
  # Register an incoming common document
  protokolo create --category common-incoming \
    --issuer "ΓΕΝΙΚΟ ΕΠΙΤΕΛΕΙΟ ΣΤΡΑΤΟΥ" --ref 1234 \
    --doc-date 2026-08-01 --subject "Αίτημα υλικού" --entry-date 2026-08-02 \
    --office office-1 --office gdy

  # Outgoing signals need a recipient and a SIC
  protokolo create --category signals-outgoing \
    --issuer "ΔΙΟΙΚΗΣΗ ΜΕΤΑΦΟΡΩΝ" --ref 88 --doc-date 2026-08-01 \
    --subject "Αναφορά προόδου" --entry-date 2026-08-01 \
    --recipient "ΠΑΡΑΛΗΠΤΗΣ 1" --sic SIC100 --office office-2`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createCategory, "category", "", "registration category (required)")
	createCmd.Flags().StringVar(&createIssuer, "issuer", "", "document issuer")
	createCmd.Flags().StringVar(&createRefNumber, "ref", "", "reference number")
	createCmd.Flags().StringVar(&createDocDate, "doc-date", "", "document date")
	createCmd.Flags().StringVar(&createSubject, "subject", "", "document subject")
	createCmd.Flags().StringVar(&createEntryDate, "entry-date", "", "entry date")
	createCmd.Flags().StringVar(&createRecipient, "recipient", "", "recipient (outgoing categories)")
	createCmd.Flags().StringVar(&createSIC, "sic", "", "SIC (signals categories)")
	createCmd.Flags().StringArrayVar(&createOffices, "office", nil, "distributing office key (repeatable)")
	_ = createCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	category, err := domain.ParseCategory(createCategory)
	if err != nil {
		return err
	}

	offices := make([]domain.Office, 0, len(createOffices))
	for _, key := range createOffices {
		office, err := domain.ParseOffice(key)
		if err != nil {
			return err
		}
		offices = append(offices, office)
	}

	service, cleanup, err := openRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.Create(cmd.Context(), registry.CreateRequest{
		Category: category,
		Form: domain.FormData{
			Issuer:    createIssuer,
			RefNumber: createRefNumber,
			DocDate:   createDocDate,
			Subject:   createSubject,
			EntryDate: createEntryDate,
			Recipient: createRecipient,
			SIC:       createSIC,
		},
		Offices: offices,
	})
	if err != nil {
		return err
	}

	t := labels()
	title := lipgloss.NewStyle().Bold(true)
	field := lipgloss.NewStyle().Faint(true)

	fmt.Println(title.Render(t.Label("confirmation.title")))
	fmt.Printf("%s: %s\n", field.Render(t.Label("confirmation.protocolNumber")), result.ProtocolNumber)
	if result.DraftNumber != "" {
		fmt.Printf("%s: %s\n", field.Render(t.Label("confirmation.draftNumber")), result.DraftNumber)
	}
	fmt.Printf("%s: %s\n", field.Render("id"), result.ID)
	fmt.Println(t.Label("confirmation.saved"))
	return nil
}
