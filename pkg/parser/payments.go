package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

var (
	codeHolderRegex = regexp.MustCompile(
		`TxId: (\d+)\.? Your payment of ([\d,]+) RWF to (.+?) has been completed`)

	airtimeRegex = regexp.MustCompile(
		`TxId:(\d+)\*S\*Your payment of ([\d,]+) RWF to Airtime with token`)
	cashPowerRegex = regexp.MustCompile(
		`TxId:(\d+)\*S\*Your payment of ([\d,]+) RWF to MTN Cash Power with token`)
	billFeeRegex = regexp.MustCompile(`Fee was ([\d,]+) RWF`)

	thirdPartyRegex = regexp.MustCompile(
		`A transaction of ([\d,]+) RWF by (.*?) on your MOMO account was successfully completed`)
)

func (m *MoMo) ParsePaymentToCodeHolder(
	_ context.Context,
	body string,
) (*database.PaymentToCodeHolder, error) {
	matches, err := firstMatch(codeHolderRegex, body, 4)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[2])
	if err != nil {
		return nil, err
	}

	dateTime, err := extractDateTime(body)
	if err != nil {
		return nil, err
	}

	// The recipient span is "<name> <code>" when a holder code is present.
	// The code is optional; its absence does not fail the record.
	recipient := strings.TrimSpace(matches[3])
	code := ""

	if idx := strings.LastIndex(recipient, " "); idx >= 0 && isDigits(recipient[idx+1:]) {
		code = recipient[idx+1:]
		recipient = strings.TrimSpace(recipient[:idx])
	}

	return &database.PaymentToCodeHolder{
		TransactionID: matches[1],
		Amount:        amount,
		Recipient:     recipient,
		RecipientCode: code,
		DateTime:      dateTime,
	}, nil
}

func (m *MoMo) ParseAirtimeBillPayment(
	ctx context.Context,
	body string,
) (*database.AirtimeBillPayment, error) {
	matches, err := firstMatch(airtimeRegex, body, 3)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[2])
	if err != nil {
		return nil, err
	}

	dateTime, err := extractDateTime(body)
	if err != nil {
		return nil, err
	}

	fee, err := m.parseBillFee(ctx, body)
	if err != nil {
		return nil, err
	}

	return &database.AirtimeBillPayment{
		TransactionID: matches[1],
		Amount:        amount,
		DateTime:      dateTime,
		Fee:           fee,
	}, nil
}

func (m *MoMo) ParseCashPowerBillPayment(
	ctx context.Context,
	body string,
) (*database.CashPowerBillPayment, error) {
	matches, err := firstMatch(cashPowerRegex, body, 3)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[2])
	if err != nil {
		return nil, err
	}

	dateTime, err := extractDateTime(body)
	if err != nil {
		return nil, err
	}

	fee, err := m.parseBillFee(ctx, body)
	if err != nil {
		return nil, err
	}

	return &database.CashPowerBillPayment{
		TransactionID: matches[1],
		Amount:        amount,
		DateTime:      dateTime,
		Fee:           fee,
	}, nil
}

// parseBillFee defaults to zero when the fee clause is absent; some bill
// payment variants omit it. A present but malformed span still fails.
func (m *MoMo) parseBillFee(_ context.Context, body string) (decimal.Decimal, error) {
	matches := billFeeRegex.FindStringSubmatch(body)
	if len(matches) != 2 {
		return decimal.Zero, nil
	}

	return parseAmount(matches[1])
}

func (m *MoMo) ParseThirdPartyTransaction(
	_ context.Context,
	body string,
) (*database.ThirdPartyTransaction, error) {
	matches, err := firstMatch(thirdPartyRegex, body, 3)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[1])
	if err != nil {
		return nil, err
	}

	dateTime, err := extractDateTime(body)
	if err != nil {
		return nil, err
	}

	// Not every third-party text carries a transaction id.
	txnID := ""
	if idMatches := txnIDRegex.FindStringSubmatch(body); len(idMatches) == 2 {
		txnID = idMatches[1]
	}

	return &database.ThirdPartyTransaction{
		Amount:        amount,
		InitiatedBy:   strings.TrimSpace(matches[2]),
		DateTime:      dateTime,
		TransactionID: txnID,
	}, nil
}
