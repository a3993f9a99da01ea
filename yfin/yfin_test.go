package yfin

import (
	"encoding/json"
	"testing"

	finance "github.com/piquette/finance-go"
)

func TestATMVolatility(t *testing.T) {
	chain := []finance.Straddle{
		{Strike: 90, Call: &finance.Contract{ImpliedVolatility: 0.75}},
		{Strike: 100, Call: &finance.Contract{ImpliedVolatility: 0.5}},
		{Strike: 110, Call: &finance.Contract{ImpliedVolatility: 0.25}},
		{Strike: 101, Put: &finance.Contract{ImpliedVolatility: 0.9}},  // put-only straddle
		{Strike: 0, Call: &finance.Contract{ImpliedVolatility: 0.99}},  // unpublished strike
		{Strike: 102, Call: &finance.Contract{}},                       // unpublished IV
	}

	iv, ok := atmVolatility(chain, 101)
	if !ok {
		t.Fatal("atmVolatility() found no call in a chain with three")
	}
	// nearest usable strike is 100, IV reported as a percentage
	if iv != 50 {
		t.Errorf("atmVolatility() = %v, want 50", iv)
	}

	// nearest wins even deep out of the money
	if iv, _ := atmVolatility(chain, 300); iv != 25 {
		t.Errorf("atmVolatility() = %v, want 25", iv)
	}

	if _, ok := atmVolatility(nil, 100); ok {
		t.Errorf("atmVolatility() on an empty chain reported a value")
	}
	if _, ok := atmVolatility([]finance.Straddle{{Strike: 100}}, 100); ok {
		t.Errorf("atmVolatility() on a call-less chain reported a value")
	}
}

func TestJsonNumber(t *testing.T) {
	const payload = `{
	  "quoteSummary": {
	    "result": [
	      {
	        "summaryDetail": {
	          "priceToSalesTrailing12Months": {"raw": 7.456, "fmt": "7.46"}
	        }
	      }
	    ],
	    "error": null
	  }
	}`
	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatal(err)
	}

	got, err := jsonNumber(jobj, "$.quoteSummary.result[0].summaryDetail.priceToSalesTrailing12Months.raw")
	if err != nil {
		t.Fatalf("jsonNumber() error = %v", err)
	}
	if got != 7.456 {
		t.Errorf("jsonNumber() = %v, want 7.456", got)
	}

	if _, err := jsonNumber(jobj, "$.quoteSummary.result[0].summaryDetail.missing.raw"); err == nil {
		t.Errorf("jsonNumber() on a missing path returned no error")
	}

	if _, err := jsonNumber(jobj, "$.quoteSummary.error"); err == nil {
		t.Errorf("jsonNumber() on a null value returned no error")
	}
}
