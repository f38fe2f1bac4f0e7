package parser_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wakahq/momo-sms-importer/pkg/parser"
)

func frozenMoMo() *parser.MoMo {
	srv := parser.NewMoMo()
	srv.Now = func() time.Time {
		return time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC)
	}

	return srv
}

func TestParseInternetBundlePurchase(t *testing.T) {
	input := "Yello!Umaze kugura 5,000FRW(7GB) igura 5,000 RWF"

	srv := frozenMoMo()

	resp, err := srv.ParseInternetBundlePurchase(context.TODO(), input)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, "5000", resp.Amount.String())
	assert.Equal(t, "7", resp.BundleSize)
	assert.Equal(t, "GB", resp.Unit)
	assert.Equal(t, "2024-03-19 10:00:00", resp.DateTime)
}

func TestParseInternetBundlePurchaseMB(t *testing.T) {
	input := "Yello!Umaze kugura 500Rwf(250MB) igura 500 RWF"

	srv := frozenMoMo()

	resp, err := srv.ParseInternetBundlePurchase(context.TODO(), input)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, "500", resp.Amount.String())
	assert.Equal(t, "250", resp.BundleSize)
	assert.Equal(t, "MB", resp.Unit)
}

func TestParseVoiceBundlePurchase(t *testing.T) {
	input := "Yello!Umaze kugura 1,000Frw=100Mins+100SMS igura 1,000 RWF"

	srv := frozenMoMo()

	resp, err := srv.ParseVoiceBundlePurchase(context.TODO(), input)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, "1000", resp.Amount.String())
	assert.Equal(t, "100", resp.Minutes)
	assert.Equal(t, "100", resp.Smses)
	assert.Equal(t, "2024-03-19 10:00:00", resp.DateTime)
}
