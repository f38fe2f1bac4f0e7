package main

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wakahq/momo-sms-importer/pkg/database"
	"github.com/wakahq/momo-sms-importer/pkg/repo"
)

type Config struct {
	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING,required"`
	OutputPath               string `env:"OUTPUT_PATH" envDefault:"transactions.xlsx"`
}

var categories = []database.Category{
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

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	dataRepo := repo.NewPostgres(db)
	ctx := context.Background()

	file := xlsx.NewFile()

	for _, category := range categories {
		records, listErr := dataRepo.ListRecords(ctx, category)
		if listErr != nil {
			log.Fatal().Err(listErr).Msgf("failed to list %s records", category)
		}

		sheet, sheetErr := file.AddSheet(string(category))
		if sheetErr != nil {
			log.Fatal().Err(sheetErr).Msgf("failed to add sheet for %s", category)
		}

		writeHeader(sheet, category)

		for _, record := range records {
			writeRecord(sheet, record)
		}

		log.Info().Msgf("exported %v %s records", len(records), category)
	}

	if err = file.Save(cfg.OutputPath); err != nil {
		log.Fatal().Err(err).Msg("failed to save workbook")
	}

	log.Info().Msgf("workbook saved to %s", cfg.OutputPath)
}

func writeHeader(sheet *xlsx.Sheet, category database.Category) {
	row := sheet.AddRow()

	for _, column := range headersFor(category) {
		row.AddCell().SetString(column)
	}
}

func headersFor(category database.Category) []string {
	switch category {
	case database.CategoryIncomingMoney:
		return []string{"Id", "Amount", "Sender", "Date", "Transaction Id"}
	case database.CategoryPaymentToCodeHolder:
		return []string{"Id", "Amount", "Recipient", "Recipient Code", "Date", "Transaction Id"}
	case database.CategoryTransferToMobile:
		return []string{"Id", "Amount", "Recipient", "Recipient Number", "Date", "Fee"}
	case database.CategoryBankDeposit:
		return []string{"Id", "Amount", "Date"}
	case database.CategoryAirtimeBillPayment, database.CategoryCashPowerBillPayment:
		return []string{"Id", "Amount", "Date", "Fee", "Transaction Id"}
	case database.CategoryThirdPartyTransaction:
		return []string{"Id", "Amount", "Initiated By", "Date", "Transaction Id"}
	case database.CategoryWithdrawalFromAgent:
		return []string{"Id", "Amount", "User", "Agent", "Agent Number", "Date"}
	case database.CategoryBankTransfer:
		return []string{"Id", "Amount", "Recipient", "Date"}
	case database.CategoryInternetBundlePurchase:
		return []string{"Id", "Amount", "Bundle Size", "Unit", "Date"}
	case database.CategoryVoiceBundlePurchase:
		return []string{"Id", "Amount", "Minutes", "SMS", "Date"}
	default:
		return nil
	}
}

func writeRecord(sheet *xlsx.Sheet, record database.Record) {
	row := sheet.AddRow()

	row.AddCell().SetString(fmt.Sprintf("%v", record.RecordID()))
	row.AddCell().SetString(record.TxAmount().String())

	switch rec := record.(type) {
	case *database.IncomingMoney:
		addCells(row, rec.Sender, rec.DateTime, rec.TransactionID)
	case *database.PaymentToCodeHolder:
		addCells(row, rec.Recipient, rec.RecipientCode, rec.DateTime, rec.TransactionID)
	case *database.TransferToMobile:
		addCells(row, rec.Recipient, rec.RecipientNumber, rec.DateTime, rec.Fee.String())
	case *database.BankDeposit:
		addCells(row, rec.DateTime)
	case *database.AirtimeBillPayment:
		addCells(row, rec.DateTime, rec.Fee.String(), rec.TransactionID)
	case *database.CashPowerBillPayment:
		addCells(row, rec.DateTime, rec.Fee.String(), rec.TransactionID)
	case *database.ThirdPartyTransaction:
		addCells(row, rec.InitiatedBy, rec.DateTime, rec.TransactionID)
	case *database.WithdrawalFromAgent:
		addCells(row, rec.UserName, rec.AgentName, rec.AgentNumber, rec.DateTime)
	case *database.BankTransfer:
		addCells(row, rec.Recipient, rec.DateTime)
	case *database.InternetBundlePurchase:
		addCells(row, rec.BundleSize, rec.Unit, rec.DateTime)
	case *database.VoiceBundlePurchase:
		addCells(row, rec.Minutes, rec.Smses, rec.DateTime)
	}
}

func addCells(row *xlsx.Row, values ...string) {
	for _, value := range values {
		row.AddCell().SetString(value)
	}
}
