package ofx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/ofx"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

const sampleStatement = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260131120000[-3:BRT]
<LANGUAGE>POR
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STMTRS>
<CURDEF>BRL
<BANKACCTFROM>
<BANKID>0341
<ACCTID>12345-6
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101
<DTEND>20260131
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260105120000[-3:BRT]
<TRNAMT>250.00
<FITID>TXN1
<NAME>ACME & SONS
<MEMO>Invoice 42
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20260110
<TRNAMT>-588,74
<FITID>TXN2
<CHECKNUM>000123
<MEMO>Fornecedor
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20260131
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParser_Parse(t *testing.T) {
	p := ofx.NewParser()

	stmt, err := p.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)

	assert.Equal(t, "0341", stmt.BankID)
	assert.Equal(t, "12345-6", stmt.AccountNumber)
	assert.Equal(t, date(2026, 1, 1), stmt.Start)
	assert.Equal(t, date(2026, 1, 31), stmt.End)
	assert.Zero(t, stmt.Skipped)
	assert.Zero(t, stmt.Malformed)

	require.Len(t, stmt.Transactions, 2)

	credit := stmt.Transactions[0]
	assert.Equal(t, date(2026, 1, 5), credit.PostedAt)
	assert.Equal(t, int64(25000), credit.Amount)
	assert.Equal(t, movement.DirectionCredit, credit.Direction)
	assert.Equal(t, "TXN1", credit.FitID)
	assert.Equal(t, "CREDIT", credit.Type)
	assert.Equal(t, "ACME & SONS", credit.Payee)
	assert.Equal(t, "Invoice 42", credit.Memo)
	assert.Equal(t, int64(25000), credit.Signed())

	debit := stmt.Transactions[1]
	assert.Equal(t, date(2026, 1, 10), debit.PostedAt)
	assert.Equal(t, int64(58874), debit.Amount)
	assert.Equal(t, movement.DirectionDebit, debit.Direction)
	assert.Equal(t, "TXN2", debit.FitID)
	assert.Equal(t, "000123", debit.CheckNumber)
	assert.Equal(t, int64(-58874), debit.Signed())
}

func TestParser_EntityShapedPayeeText(t *testing.T) {
	doc := `<OFX>
<BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20260105
<TRNAMT>-120.00
<FITID>T1
<NAME>AT&T MOBILE
<MEMO>AT&T; TELECOM
</STMTTRN>
</BANKTRANLIST>
</OFX>`

	p := ofx.NewParser()

	stmt, err := p.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "AT&T MOBILE", stmt.Transactions[0].Payee)
	assert.Equal(t, "AT&T; TELECOM", stmt.Transactions[0].Memo)
}

func TestParser_UnparsableRoot(t *testing.T) {
	p := ofx.NewParser()

	_, err := p.Parse(strings.NewReader("<html><body>not a statement</body></html>"))
	assert.ErrorIs(t, err, ofx.ErrMalformedDocument)
}

func TestParser_NoValidTransactions(t *testing.T) {
	doc := `<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKACCTFROM>
<BANKID>0001
<ACCTID>99
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101
<DTEND>20260131
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

	p := ofx.NewParser()

	_, err := p.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, ofx.ErrNoTransactions)
}

func TestParser_DropsBadDateAndAmount(t *testing.T) {
	doc := `<OFX>
<BANKTRANLIST>
<STMTTRN>
<DTPOSTED>not-a-date
<TRNAMT>10.00
<FITID>A
</STMTTRN>
<STMTTRN>
<DTPOSTED>20260102
<TRNAMT>oops
<FITID>B
</STMTTRN>
<STMTTRN>
<DTPOSTED>20260103
<TRNAMT>42.00
<FITID>C
</STMTTRN>
</BANKTRANLIST>
</OFX>`

	p := ofx.NewParser()

	stmt, err := p.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "C", stmt.Transactions[0].FitID)
	assert.Equal(t, 1, stmt.Skipped)
	assert.Equal(t, 1, stmt.Malformed)
}

func TestParser_PeriodDefaultsToTransactionDates(t *testing.T) {
	doc := `<OFX>
<BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20260120
<TRNAMT>-5.00
<FITID>X1
</STMTTRN>
<STMTTRN>
<DTPOSTED>20260107
<TRNAMT>7.50
<FITID>X2
</STMTTRN>
</BANKTRANLIST>
</OFX>`

	p := ofx.NewParser()

	stmt, err := p.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, date(2026, 1, 7), stmt.Start)
	assert.Equal(t, date(2026, 1, 20), stmt.End)
}
