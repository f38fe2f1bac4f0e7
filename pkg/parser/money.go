package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

var (
	incomingMoneyRegex = regexp.MustCompile(`received ([\d,]+) RWF from (.+?) \(`)
	txnIDRegex         = regexp.MustCompile(`Financial Transaction Id: (\d+)`)

	transferToMobileRegex = regexp.MustCompile(`([\d,]+) RWF transferred to (.+?) \((250\d+)\)`)
	transferFeeRegex      = regexp.MustCompile(`Fee was: ([\d,]+) RWF`)

	bankDepositRegex = regexp.MustCompile(`deposit of ([\d,]+) RWF`)

	withdrawalRegex = regexp.MustCompile(
		`You (.*?)\(\*+\d{3}\) have via agent: (.*?) \((\d+)\), withdrawn ([\d,]+) RWF`)

	bankTransferRegex = regexp.MustCompile(`transferred ([\d,]+) RWF to (.*?) from your `)
)

func (m *MoMo) ParseIncomingMoney(
	_ context.Context,
	body string,
) (*database.IncomingMoney, error) {
	matches, err := firstMatch(incomingMoneyRegex, body, 3)
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

	txnID, err := firstMatch(txnIDRegex, body, 2)
	if err != nil {
		return nil, err
	}

	return &database.IncomingMoney{
		Amount:        amount,
		Sender:        strings.TrimSpace(matches[2]),
		DateTime:      dateTime,
		TransactionID: txnID[1],
	}, nil
}

func (m *MoMo) ParseTransferToMobile(
	_ context.Context,
	body string,
) (*database.TransferToMobile, error) {
	matches, err := firstMatch(transferToMobileRegex, body, 4)
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

	feeMatches, err := firstMatch(transferFeeRegex, body, 2)
	if err != nil {
		return nil, err
	}

	fee, err := parseAmount(feeMatches[1])
	if err != nil {
		return nil, err
	}

	return &database.TransferToMobile{
		Amount:          amount,
		Recipient:       strings.TrimSpace(matches[2]),
		RecipientNumber: matches[3],
		DateTime:        dateTime,
		Fee:             fee,
	}, nil
}

func (m *MoMo) ParseBankDeposit(
	_ context.Context,
	body string,
) (*database.BankDeposit, error) {
	matches, err := firstMatch(bankDepositRegex, body, 2)
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

	return &database.BankDeposit{
		Amount:   amount,
		DateTime: dateTime,
	}, nil
}

func (m *MoMo) ParseWithdrawalFromAgent(
	_ context.Context,
	body string,
) (*database.WithdrawalFromAgent, error) {
	matches, err := firstMatch(withdrawalRegex, body, 5)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[4])
	if err != nil {
		return nil, err
	}

	dateTime, err := extractDateTime(body)
	if err != nil {
		return nil, err
	}

	return &database.WithdrawalFromAgent{
		UserName:    strings.TrimSpace(matches[1]),
		AgentName:   strings.TrimSpace(matches[2]),
		AgentNumber: matches[3],
		Amount:      amount,
		DateTime:    dateTime,
	}, nil
}

func (m *MoMo) ParseBankTransfer(
	_ context.Context,
	body string,
) (*database.BankTransfer, error) {
	matches, err := firstMatch(bankTransferRegex, body, 3)
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

	return &database.BankTransfer{
		Amount:    amount,
		Recipient: strings.TrimSpace(matches[2]),
		DateTime:  dateTime,
	}, nil
}
