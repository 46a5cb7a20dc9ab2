// Package i18n provides the bilingual label catalog consumed by the CLI.
// Category and office enumerants map one-to-one to catalog keys
// ("category.<key>", "office.<key>").
package i18n

import (
	gocache "github.com/patrickmn/go-cache"
)

// Language selects a translation table.
type Language string

const (
	LanguageGreek   Language = "el"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is Greek, matching the registry's primary audience.
const DefaultLanguage = LanguageGreek

var greek = map[string]string{
	"app.title": "Σύστημα Πρωτοκόλλου",

	"category.common-incoming":       "ΚΟΙΝΑ ΕΙΣΕΡΧΟΜΕΝΑ",
	"category.common-outgoing":       "ΚΟΙΝΑ ΕΞΕΡΧΟΜΕΝΑ",
	"category.signals-incoming":      "ΣΗΜΑΤΑ ΕΙΣΕΡΧΟΜΕΝΑ",
	"category.signals-outgoing":      "ΣΗΜΑΤΑ ΕΞΕΡΧΟΜΕΝΑ",
	"category.confidential-incoming": "ΑΠΟΡΡΗΤΑ ΕΙΣΕΡΧΟΜΕΝΑ",
	"category.confidential-outgoing": "ΑΠΟΡΡΗΤΑ ΕΞΕΡΧΟΜΕΝΑ",

	"office.office-1":           "1ο ΓΡΑΦΕΙΟ",
	"office.office-2":           "2ο ΓΡΑΦΕΙΟ",
	"office.office-3":           "3ο ΓΡΑΦΕΙΟ",
	"office.office-4":           "4ο ΓΡΑΦΕΙΟ",
	"office.gdy":                "ΓΔΥ",
	"office.transactions":       "ΓΡΑΦΕΙΟ ΔΟΣΟΛΗΨΕΩΝ",
	"office.armor-liaison":      "ΣΥΝΔΕΣΜΟΣ ΤΘ",
	"office.civilian-personnel": "ΤΜΗΜΑ ΠΟΛΙΤΙΚΟΥ ΠΡΟΣ.",

	"field.issuer":    "ΕΚΔΟΤΗΣ ΕΓΓΡΑΦΟΥ",
	"field.refNumber": "φ",
	"field.docDate":   "ΗΜΕΡ. Φ",
	"field.subject":   "ΘΕΜΑ Φ",
	"field.entryDate": "ΗΜΕΡ. ΕΙΣΟΔΟΥ",
	"field.recipient": "ΠΑΡΑΛΗΠΤΗΣ",
	"field.sic":       "SIC",

	"list.title":            "Συνολικές Εγγραφές",
	"list.noResults":        "Δεν βρέθηκαν εγγραφές",
	"list.column.category":  "Κατηγορία",
	"list.column.protocol":  "Αρ. Πρωτοκ.",
	"list.column.draft":     "Αρ. Σχεδίου",
	"list.column.entryDate": "Ημερ. Εισόδου",
	"list.column.offices":   "Γραφεία",
	"list.column.status":    "Κατάσταση",
	"list.page":             "Σελίδα",

	"status.active":  "Ενεργό",
	"status.deleted": "Διαγραμμένο",

	"confirmation.title":          "Επιβεβαίωση Εγγραφής",
	"confirmation.protocolNumber": "ΑΡΙΘΜ. ΠΡΩΤΟΚ",
	"confirmation.draftNumber":    "ΑΡΙΘΜ. ΣΧΕΔΙΟΥ",
	"confirmation.saved":          "Η εγγραφή αποθηκεύτηκε επιτυχώς!",
}

var english = map[string]string{
	"app.title": "Registry System",

	"category.common-incoming":       "Common Incoming",
	"category.common-outgoing":       "Common Outgoing",
	"category.signals-incoming":      "Signals Incoming",
	"category.signals-outgoing":      "Signals Outgoing",
	"category.confidential-incoming": "Confidential Incoming",
	"category.confidential-outgoing": "Confidential Outgoing",

	"office.office-1":           "1st Office",
	"office.office-2":           "2nd Office",
	"office.office-3":           "3rd Office",
	"office.office-4":           "4th Office",
	"office.gdy":                "GDY",
	"office.transactions":       "Transactions Office",
	"office.armor-liaison":      "Armor Liaison",
	"office.civilian-personnel": "Civilian Personnel Dept.",

	"field.issuer":    "Document Issuer",
	"field.refNumber": "Ref No",
	"field.docDate":   "Doc Date",
	"field.subject":   "Subject",
	"field.entryDate": "Entry Date",
	"field.recipient": "Recipient",
	"field.sic":       "SIC",

	"list.title":            "Total Registrations",
	"list.noResults":        "No registrations found",
	"list.column.category":  "Category",
	"list.column.protocol":  "Protocol No.",
	"list.column.draft":     "Draft No.",
	"list.column.entryDate": "Entry Date",
	"list.column.offices":   "Offices",
	"list.column.status":    "Status",
	"list.page":             "Page",

	"status.active":  "Active",
	"status.deleted": "Deleted",

	"confirmation.title":          "Registration Confirmation",
	"confirmation.protocolNumber": "Protocol Number",
	"confirmation.draftNumber":    "Draft Number",
	"confirmation.saved":          "Registration saved successfully!",
}

// Catalog resolves label keys for a selected language. Lookups are memoized
// so repeated rendering of large listings hits the cache.
type Catalog struct {
	language Language
	cache    *gocache.Cache
}

// NewCatalog creates a catalog for the given language. Unknown languages
// fall back to the default.
func NewCatalog(language Language) *Catalog {
	if language != LanguageGreek && language != LanguageEnglish {
		language = DefaultLanguage
	}
	return &Catalog{
		language: language,
		cache:    gocache.New(gocache.NoExpiration, 0),
	}
}

// Language returns the catalog's language.
func (c *Catalog) Language() Language {
	return c.language
}

// Label returns the display text for a key. Missing keys fall back to the
// key itself so a gap in the catalog never hides data.
func (c *Catalog) Label(key string) string {
	cacheKey := string(c.language) + ":" + key
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(string)
	}

	table := greek
	if c.language == LanguageEnglish {
		table = english
	}
	label, ok := table[key]
	if !ok {
		label = key
	}
	c.cache.Set(cacheKey, label, gocache.NoExpiration)
	return label
}
