package parser

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/wakahq/momo-sms-importer/pkg/common"
	"github.com/wakahq/momo-sms-importer/pkg/database"
)

// MoMo parses MTN Mobile Money notification texts. It is stateless apart from
// the clock used to stamp bundle purchases, so a single instance is safe for
// concurrent use.
type MoMo struct {
	Now func() time.Time
}

func NewMoMo() *MoMo {
	return &MoMo{
		Now: time.Now,
	}
}

func (m *MoMo) Type() string {
	return "mtn_momo"
}

type categoryRule struct {
	category database.Category
	matches  func(body string) bool
}

func hasPrefix(prefix string) func(string) bool {
	return func(body string) bool {
		return strings.HasPrefix(body, prefix)
	}
}

// Order is load-bearing. The "TxId" + "payment of" cue also appears inside
// bill-payment texts, and "You have received"/"You have transferred" share the
// "You" prefix with agent withdrawals, so earlier rules claim overlapping cues
// before later ones can see them.
var categoryRules = []categoryRule{
	{database.CategoryIncomingMoney, hasPrefix("You have received")},
	{database.CategoryPaymentToCodeHolder, func(body string) bool {
		return strings.HasPrefix(body, "TxId") && strings.Contains(body, "payment of")
	}},
	{database.CategoryTransferToMobile, hasPrefix("*165*S*")},
	{database.CategoryBankDeposit, hasPrefix("*113*R*")},
	{database.CategoryAirtimeBillPayment, func(body string) bool {
		return strings.HasPrefix(body, "*162*") && strings.Contains(body, "Airtime")
	}},
	{database.CategoryCashPowerBillPayment, func(body string) bool {
		return strings.HasPrefix(body, "*162*") && strings.Contains(body, "Cash Power")
	}},
	{database.CategoryThirdPartyTransaction, hasPrefix("*164*S*")},
	{database.CategoryWithdrawalFromAgent, func(body string) bool {
		return strings.HasPrefix(body, "You") && strings.Contains(body, "withdrawn")
	}},
	{database.CategoryBankTransfer, hasPrefix("You have transferred")},
	{database.CategoryInternetBundlePurchase, func(body string) bool {
		return strings.HasPrefix(body, "Yello!Umaze kugura") &&
			(strings.Contains(body, "GB") || strings.Contains(body, "MB"))
	}},
	{database.CategoryVoiceBundlePurchase, func(body string) bool {
		return strings.HasPrefix(body, "Yello!Umaze kugura") && strings.Contains(body, "Mins")
	}},
}

// Categorize classifies a message into at most one category, first match wins.
func (m *MoMo) Categorize(body string) (database.Category, bool) {
	for _, rule := range categoryRules {
		if rule.matches(body) {
			return rule.category, true
		}
	}

	return "", false
}

// ParseMessage classifies body and runs the matching category parser. A nil
// error guarantees a fully populated record; any required-field miss fails the
// whole record.
func (m *MoMo) ParseMessage(ctx context.Context, body string) (database.Record, error) {
	category, ok := m.Categorize(body)
	if !ok {
		return nil, errors.Wrapf(common.ErrUnmatchedCategory, "body: %s", excerpt(body))
	}

	return m.ParseCategory(ctx, category, body)
}

func (m *MoMo) ParseCategory(
	ctx context.Context,
	category database.Category,
	body string,
) (database.Record, error) {
	var (
		record database.Record
		err    error
	)

	switch category {
	case database.CategoryIncomingMoney:
		record, err = m.ParseIncomingMoney(ctx, body)
	case database.CategoryPaymentToCodeHolder:
		record, err = m.ParsePaymentToCodeHolder(ctx, body)
	case database.CategoryTransferToMobile:
		record, err = m.ParseTransferToMobile(ctx, body)
	case database.CategoryBankDeposit:
		record, err = m.ParseBankDeposit(ctx, body)
	case database.CategoryAirtimeBillPayment:
		record, err = m.ParseAirtimeBillPayment(ctx, body)
	case database.CategoryCashPowerBillPayment:
		record, err = m.ParseCashPowerBillPayment(ctx, body)
	case database.CategoryThirdPartyTransaction:
		record, err = m.ParseThirdPartyTransaction(ctx, body)
	case database.CategoryWithdrawalFromAgent:
		record, err = m.ParseWithdrawalFromAgent(ctx, body)
	case database.CategoryBankTransfer:
		record, err = m.ParseBankTransfer(ctx, body)
	case database.CategoryInternetBundlePurchase:
		record, err = m.ParseInternetBundlePurchase(ctx, body)
	case database.CategoryVoiceBundlePurchase:
		record, err = m.ParseVoiceBundlePurchase(ctx, body)
	default:
		return nil, errors.Newf("no parser for category %s", category)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "category %s", category)
	}

	return record, nil
}
