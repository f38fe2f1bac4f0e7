package printer

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Describe renders every extracted field of a record. Used by the simulate
// endpoint, so the output has to account for all fields a category carries.
func (p *Printer) Describe(record database.Record) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category: %v", record.Category()))
	sb.WriteString(fmt.Sprintf("\nAmount: %v RWF", record.TxAmount().String()))

	switch rec := record.(type) {
	case *database.IncomingMoney:
		sb.WriteString(fmt.Sprintf("\nSender: %s", rec.Sender))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		sb.WriteString(fmt.Sprintf("\nTransaction Id: %s", rec.TransactionID))
	case *database.PaymentToCodeHolder:
		sb.WriteString(fmt.Sprintf("\nRecipient: %s", rec.Recipient))
		if rec.RecipientCode != "" {
			sb.WriteString(fmt.Sprintf("\nRecipient Code: %s", rec.RecipientCode))
		}
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		sb.WriteString(fmt.Sprintf("\nTransaction Id: %s", rec.TransactionID))
	case *database.TransferToMobile:
		sb.WriteString(fmt.Sprintf("\nRecipient: %s (%s)", rec.Recipient, rec.RecipientNumber))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		sb.WriteString(fmt.Sprintf("\nFee: %v RWF", rec.Fee.String()))
	case *database.BankDeposit:
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
	case *database.AirtimeBillPayment:
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		sb.WriteString(fmt.Sprintf("\nFee: %v RWF", rec.Fee.String()))
		sb.WriteString(fmt.Sprintf("\nTransaction Id: %s", rec.TransactionID))
	case *database.CashPowerBillPayment:
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		sb.WriteString(fmt.Sprintf("\nFee: %v RWF", rec.Fee.String()))
		sb.WriteString(fmt.Sprintf("\nTransaction Id: %s", rec.TransactionID))
	case *database.ThirdPartyTransaction:
		sb.WriteString(fmt.Sprintf("\nInitiated By: %s", rec.InitiatedBy))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
		if rec.TransactionID != "" {
			sb.WriteString(fmt.Sprintf("\nTransaction Id: %s", rec.TransactionID))
		}
	case *database.WithdrawalFromAgent:
		sb.WriteString(fmt.Sprintf("\nUser: %s", rec.UserName))
		sb.WriteString(fmt.Sprintf("\nAgent: %s (%s)", rec.AgentName, rec.AgentNumber))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
	case *database.BankTransfer:
		sb.WriteString(fmt.Sprintf("\nRecipient: %s", rec.Recipient))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
	case *database.InternetBundlePurchase:
		sb.WriteString(fmt.Sprintf("\nBundle: %s%s", rec.BundleSize, rec.Unit))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
	case *database.VoiceBundlePurchase:
		sb.WriteString(fmt.Sprintf("\nBundle: %s Mins + %s SMS", rec.Minutes, rec.Smses))
		sb.WriteString(fmt.Sprintf("\nDate: %s", rec.DateTime))
	}

	return sb.String()
}

func (p *Printer) Summary(persisted []database.Record, discarded int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total messages: %v", len(persisted)+discarded))
	sb.WriteString(fmt.Sprintf("\nPersisted: %v 🔥", len(persisted)))
	sb.WriteString(fmt.Sprintf("\nDiscarded: %v 🗑", discarded))

	if discarded == 0 && len(persisted) > 0 {
		sb.WriteString("\n\nAll messages persisted! 🎉")
	}

	byCategory := lo.CountValuesBy(persisted, func(rec database.Record) database.Category {
		return rec.Category()
	})

	if len(byCategory) > 0 {
		sb.WriteString("\n")
	}

	for _, category := range categoryOrder {
		count, ok := byCategory[category]
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n%v: %v", category, count))
	}

	return sb.String()
}

// Summary lines follow classification order so output is stable across runs.
var categoryOrder = []database.Category{
	database.CategoryIncomingMoney,
	database.CategoryPaymentToCodeHolder,
	database.CategoryTransferToMobile,
	database.CategoryBankDeposit,
	database.CategoryAirtimeBillPayment,
	database.CategoryCashPowerBillPayment,
	database.CategoryThirdPartyTransaction,
	database.CategoryWithdrawalFromAgent,
	database.CategoryBankTransfer,
	database.CategoryInternetBundlePurchase,
	database.CategoryVoiceBundlePurchase,
}
