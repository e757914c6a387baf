package numbering

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentType identifies a numbered financial document series.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "INV"
	DocumentTypeReceipt DocumentType = "REC"
)

// IsValid checks if the document type is a known series
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeReceipt:
		return true
	}
	return false
}

// String returns the series prefix
func (t DocumentType) String() string {
	return string(t)
}

// numberPattern matches generated document numbers, e.g. INV/2025-26-0001.
var numberPattern = regexp.MustCompile(`^(INV|REC)/\d{4}-\d{2}-\d{4}$`)

// FiscalYearLabel derives the April-to-March fiscal year label for a date.
// April onwards belongs to the year starting that April; January to March
// belong to the year started the previous April. Labels read YYYY-YY,
// e.g. 2025-26.
func FiscalYearLabel(d time.Time) string {
	year := d.Year()
	start := year
	if d.Month() < time.April {
		start = year - 1
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// Format renders a document number from its parts. Sequence numbers are
// zero-padded to four digits; wider sequences keep their natural width.
func Format(docType DocumentType, fiscalYear string, seq int) string {
	return fmt.Sprintf("%s/%s-%04d", docType, fiscalYear, seq)
}

// ParseSequence extracts the numeric suffix after the last '-' of a
// document number. Returns an error for numbers that do not carry one.
func ParseSequence(number string) (int, error) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, shared.NewValidationError("document number %q has no sequence suffix", number)
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil {
		return 0, shared.NewValidationError("document number %q has a non-numeric suffix", number)
	}
	return seq, nil
}

// IsWellFormed reports whether a number matches the generated format.
func IsWellFormed(number string) bool {
	return numberPattern.MatchString(number)
}

// Allocator hands out the next number in a (company, document type,
// fiscal year) series. Implementations must be safe under concurrent
// callers: the sequence read-and-increment happens under a row lock
// inside the caller's transaction, so two simultaneous creates cannot
// observe the same value.
type Allocator interface {
	// NextNumber returns the next formatted number for the series the
	// document date falls into.
	NextNumber(ctx context.Context, tenantID, companyID uuid.UUID, docType DocumentType, docDate time.Time) (string, error)
}
