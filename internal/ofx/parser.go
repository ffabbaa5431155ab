package ofx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/ledgerkit/bankrec/internal/encoding"
	"github.com/ledgerkit/bankrec/internal/movement"
)

// Parser reads legacy OFX bank statement downloads. The input is first
// transcoded to UTF-8 and repaired to well-formed XML, then walked as a
// token tree extracting the account header and the transaction list.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Statement, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	doc, err := sanitize(string(raw))
	if err != nil {
		return nil, err
	}

	stmt, err := walk(doc)
	if err != nil {
		return nil, err
	}

	if len(stmt.Transactions) == 0 {
		return nil, ErrNoTransactions
	}

	stmt.defaultPeriod()

	return stmt, nil
}

// walk consumes the sanitized document as an XML token stream, tracking
// the element stack so header fields are only read inside their
// expected aggregates.
func walk(doc string) (*Statement, error) {
	decoder := xml.NewDecoder(strings.NewReader(doc))

	var (
		stmt  Statement
		stack []string
		text  strings.Builder
		trn   map[string]string
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := strings.ToUpper(t.Name.Local)
			stack = append(stack, name)

			text.Reset()

			if name == "STMTTRN" {
				trn = make(map[string]string)
			}

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			name := strings.ToUpper(t.Name.Local)
			value := strings.TrimSpace(text.String())

			text.Reset()

			stack = stack[:len(stack)-1]

			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}

			switch {
			case name == "STMTTRN":
				stmt.addTransaction(trn)

				trn = nil
			case trn != nil:
				trn[name] = value
			case name == "BANKID" && parent == "BANKACCTFROM":
				stmt.BankID = value
			case name == "ACCTID" && (parent == "BANKACCTFROM" || parent == "CCACCTFROM"):
				stmt.AccountNumber = value
			case name == "DTSTART" && parent == "BANKTRANLIST":
				stmt.Start, _ = parseDate(value)
			case name == "DTEND" && parent == "BANKTRANLIST":
				stmt.End, _ = parseDate(value)
			}
		}
	}

	return &stmt, nil
}

// addTransaction normalizes one STMTTRN aggregate. Transactions with an
// unparsable posted date are dropped and counted as skipped; non-numeric
// or zero amounts are dropped and counted as malformed.
func (s *Statement) addTransaction(fields map[string]string) {
	postedAt, ok := parseDate(fields["DTPOSTED"])
	if !ok {
		s.Skipped++
		return
	}

	cents, err := parseAmount(fields["TRNAMT"])
	if err != nil || cents == 0 {
		s.Malformed++
		return
	}

	direction := movement.DirectionCredit
	if cents < 0 {
		direction = movement.DirectionDebit
		cents = -cents
	}

	s.Transactions = append(s.Transactions, Transaction{
		PostedAt:    postedAt,
		Amount:      cents,
		Direction:   direction,
		FitID:       fields["FITID"],
		Type:        fields["TRNTYPE"],
		Payee:       fields["NAME"],
		Memo:        fields["MEMO"],
		CheckNumber: fields["CHECKNUM"],
	})
}

// defaultPeriod fills a missing declared period with the min/max posted
// dates of the parsed transactions.
func (s *Statement) defaultPeriod() {
	if len(s.Transactions) == 0 {
		return
	}

	minDate := s.Transactions[0].PostedAt
	maxDate := s.Transactions[0].PostedAt

	for _, t := range s.Transactions[1:] {
		if t.PostedAt.Before(minDate) {
			minDate = t.PostedAt
		}

		if t.PostedAt.After(maxDate) {
			maxDate = t.PostedAt
		}
	}

	if s.Start.IsZero() {
		s.Start = minDate
	}

	if s.End.IsZero() {
		s.End = maxDate
	}
}

// parseDate extracts the compact YYYYMMDD prefix from an OFX timestamp
// token such as "20260105120000[-3:BRT]".
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 8 {
		return time.Time{}, false
	}

	t, err := time.Parse("20060102", s[:8])
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
