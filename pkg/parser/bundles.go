package parser

import (
	"context"
	"regexp"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

var (
	internetBundleRegex = regexp.MustCompile(`kugura ([\d,]+)(?:Rwf|FRW)\((\d+)(GB|MB)\)`)
	voiceBundleRegex    = regexp.MustCompile(`kugura ([\d,]+)Frw=(\d+)Mins\+(\d+)SMS`)
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Bundle confirmations carry no timestamp, so both bundle parsers stamp the
// processing time instead.

func (m *MoMo) ParseInternetBundlePurchase(
	_ context.Context,
	body string,
) (*database.InternetBundlePurchase, error) {
	matches, err := firstMatch(internetBundleRegex, body, 4)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[1])
	if err != nil {
		return nil, err
	}

	return &database.InternetBundlePurchase{
		Amount:     amount,
		BundleSize: matches[2],
		Unit:       matches[3],
		DateTime:   m.Now().Format(dateTimeLayout),
	}, nil
}

func (m *MoMo) ParseVoiceBundlePurchase(
	_ context.Context,
	body string,
) (*database.VoiceBundlePurchase, error) {
	matches, err := firstMatch(voiceBundleRegex, body, 4)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(matches[1])
	if err != nil {
		return nil, err
	}

	return &database.VoiceBundlePurchase{
		Amount:   amount,
		Minutes:  matches[2],
		Smses:    matches[3],
		DateTime: m.Now().Format(dateTimeLayout),
	}, nil
}
