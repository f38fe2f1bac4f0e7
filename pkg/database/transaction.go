package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryIncomingMoney          = Category("incoming_money")
	CategoryPaymentToCodeHolder    = Category("payment_to_code_holder")
	CategoryTransferToMobile       = Category("transfer_to_mobile")
	CategoryBankDeposit            = Category("bank_deposit")
	CategoryAirtimeBillPayment     = Category("airtime_bill_payment")
	CategoryCashPowerBillPayment   = Category("cash_power_bill_payment")
	CategoryThirdPartyTransaction  = Category("third_party_transaction")
	CategoryWithdrawalFromAgent    = Category("withdrawal_from_agent")
	CategoryBankTransfer           = Category("bank_transfer")
	CategoryInternetBundlePurchase = Category("internet_bundle_purchase")
	CategoryVoiceBundlePurchase    = Category("voice_bundle_purchase")
)

// Record is the closed set of transaction records a notification message can
// produce. One concrete type per category; the parser never returns a partially
// populated record. RecordID is zero until the repo persists the record, TxID
// is empty for categories without an issuer-assigned transaction id.
type Record interface {
	Category() Category
	TableName() string
	RecordID() int64
	TxID() string
	TxAmount() decimal.Decimal
}

type IncomingMoney struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	Amount        decimal.Decimal
	Sender        string
	DateTime      string
	TransactionID string
}

func (t *IncomingMoney) Category() Category        { return CategoryIncomingMoney }
func (t *IncomingMoney) TableName() string         { return "incoming_money" }
func (t *IncomingMoney) RecordID() int64           { return t.ID }
func (t *IncomingMoney) TxID() string              { return t.TransactionID }
func (t *IncomingMoney) TxAmount() decimal.Decimal { return t.Amount }

type PaymentToCodeHolder struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	TransactionID string
	Amount        decimal.Decimal
	Recipient     string
	RecipientCode string
	DateTime      string
}

func (t *PaymentToCodeHolder) Category() Category        { return CategoryPaymentToCodeHolder }
func (t *PaymentToCodeHolder) TableName() string         { return "payment_to_code_holder" }
func (t *PaymentToCodeHolder) RecordID() int64           { return t.ID }
func (t *PaymentToCodeHolder) TxID() string              { return t.TransactionID }
func (t *PaymentToCodeHolder) TxAmount() decimal.Decimal { return t.Amount }

type TransferToMobile struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	Amount          decimal.Decimal
	Recipient       string
	RecipientNumber string
	DateTime        string
	Fee             decimal.Decimal
}

func (t *TransferToMobile) Category() Category        { return CategoryTransferToMobile }
func (t *TransferToMobile) TableName() string         { return "transfer_to_mobile" }
func (t *TransferToMobile) RecordID() int64           { return t.ID }
func (t *TransferToMobile) TxID() string              { return "" }
func (t *TransferToMobile) TxAmount() decimal.Decimal { return t.Amount }

type BankDeposit struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	Amount   decimal.Decimal
	DateTime string
}

func (t *BankDeposit) Category() Category        { return CategoryBankDeposit }
func (t *BankDeposit) TableName() string         { return "bank_deposits" }
func (t *BankDeposit) RecordID() int64           { return t.ID }
func (t *BankDeposit) TxID() string              { return "" }
func (t *BankDeposit) TxAmount() decimal.Decimal { return t.Amount }

type AirtimeBillPayment struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	TransactionID string
	Amount        decimal.Decimal
	DateTime      string
	Fee           decimal.Decimal
}

func (t *AirtimeBillPayment) Category() Category        { return CategoryAirtimeBillPayment }
func (t *AirtimeBillPayment) TableName() string         { return "airtime_bill_payments" }
func (t *AirtimeBillPayment) RecordID() int64           { return t.ID }
func (t *AirtimeBillPayment) TxID() string              { return t.TransactionID }
func (t *AirtimeBillPayment) TxAmount() decimal.Decimal { return t.Amount }

type CashPowerBillPayment struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	TransactionID string
	Amount        decimal.Decimal
	DateTime      string
	Fee           decimal.Decimal
}

func (t *CashPowerBillPayment) Category() Category        { return CategoryCashPowerBillPayment }
func (t *CashPowerBillPayment) TableName() string         { return "cash_power_bill_payments" }
func (t *CashPowerBillPayment) RecordID() int64           { return t.ID }
func (t *CashPowerBillPayment) TxID() string              { return t.TransactionID }
func (t *CashPowerBillPayment) TxAmount() decimal.Decimal { return t.Amount }

type ThirdPartyTransaction struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	Amount        decimal.Decimal
	InitiatedBy   string
	DateTime      string
	TransactionID string
}

func (t *ThirdPartyTransaction) Category() Category        { return CategoryThirdPartyTransaction }
func (t *ThirdPartyTransaction) TableName() string         { return "third_party_transactions" }
func (t *ThirdPartyTransaction) RecordID() int64           { return t.ID }
func (t *ThirdPartyTransaction) TxID() string              { return t.TransactionID }
func (t *ThirdPartyTransaction) TxAmount() decimal.Decimal { return t.Amount }

type WithdrawalFromAgent struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	UserName    string
	AgentName   string
	AgentNumber string
	Amount      decimal.Decimal
	DateTime    string
}

func (t *WithdrawalFromAgent) Category() Category        { return CategoryWithdrawalFromAgent }
func (t *WithdrawalFromAgent) TableName() string         { return "withdrawals_from_agents" }
func (t *WithdrawalFromAgent) RecordID() int64           { return t.ID }
func (t *WithdrawalFromAgent) TxID() string              { return "" }
func (t *WithdrawalFromAgent) TxAmount() decimal.Decimal { return t.Amount }

type BankTransfer struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Amount    decimal.Decimal
	Recipient string
	DateTime  string
}

func (t *BankTransfer) Category() Category        { return CategoryBankTransfer }
func (t *BankTransfer) TableName() string         { return "bank_transfers" }
func (t *BankTransfer) RecordID() int64           { return t.ID }
func (t *BankTransfer) TxID() string              { return "" }
func (t *BankTransfer) TxAmount() decimal.Decimal { return t.Amount }

type InternetBundlePurchase struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	Amount     decimal.Decimal
	BundleSize string
	Unit       string
	DateTime   string
}

func (t *InternetBundlePurchase) Category() Category        { return CategoryInternetBundlePurchase }
func (t *InternetBundlePurchase) TableName() string         { return "internet_bundle_purchases" }
func (t *InternetBundlePurchase) RecordID() int64           { return t.ID }
func (t *InternetBundlePurchase) TxID() string              { return "" }
func (t *InternetBundlePurchase) TxAmount() decimal.Decimal { return t.Amount }

type VoiceBundlePurchase struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	Amount   decimal.Decimal
	Minutes  string
	Smses    string
	DateTime string
}

func (t *VoiceBundlePurchase) Category() Category        { return CategoryVoiceBundlePurchase }
func (t *VoiceBundlePurchase) TableName() string         { return "voice_bundle_purchases" }
func (t *VoiceBundlePurchase) RecordID() int64           { return t.ID }
func (t *VoiceBundlePurchase) TxID() string              { return "" }
func (t *VoiceBundlePurchase) TxAmount() decimal.Decimal { return t.Amount }

// SyncStatus tracks whether a stored record has been pushed to the remote
// collector. Populated once per persisted record that carries a transaction id,
// updated out-of-band by the syncer.
type SyncStatus struct {
	TransactionID string `gorm:"primaryKey"`
	SourceTable   string
	RecordID      int64
	Synced        bool
	SyncTimestamp *time.Time
}

func (SyncStatus) TableName() string { return "sync_status" }

var tableCategories = map[string]Category{
	"incoming_money":            CategoryIncomingMoney,
	"payment_to_code_holder":    CategoryPaymentToCodeHolder,
	"transfer_to_mobile":        CategoryTransferToMobile,
	"bank_deposits":             CategoryBankDeposit,
	"airtime_bill_payments":     CategoryAirtimeBillPayment,
	"cash_power_bill_payments":  CategoryCashPowerBillPayment,
	"third_party_transactions":  CategoryThirdPartyTransaction,
	"withdrawals_from_agents":   CategoryWithdrawalFromAgent,
	"bank_transfers":            CategoryBankTransfer,
	"internet_bundle_purchases": CategoryInternetBundlePurchase,
	"voice_bundle_purchases":    CategoryVoiceBundlePurchase,
}

func CategoryForTable(table string) (Category, bool) {
	category, ok := tableCategories[table]
	return category, ok
}

// NewRecord returns an empty record of the given category, for the repo to
// scan rows into.
func NewRecord(category Category) (Record, bool) {
	switch category {
	case CategoryIncomingMoney:
		return &IncomingMoney{}, true
	case CategoryPaymentToCodeHolder:
		return &PaymentToCodeHolder{}, true
	case CategoryTransferToMobile:
		return &TransferToMobile{}, true
	case CategoryBankDeposit:
		return &BankDeposit{}, true
	case CategoryAirtimeBillPayment:
		return &AirtimeBillPayment{}, true
	case CategoryCashPowerBillPayment:
		return &CashPowerBillPayment{}, true
	case CategoryThirdPartyTransaction:
		return &ThirdPartyTransaction{}, true
	case CategoryWithdrawalFromAgent:
		return &WithdrawalFromAgent{}, true
	case CategoryBankTransfer:
		return &BankTransfer{}, true
	case CategoryInternetBundlePurchase:
		return &InternetBundlePurchase{}, true
	case CategoryVoiceBundlePurchase:
		return &VoiceBundlePurchase{}, true
	default:
		return nil, false
	}
}
