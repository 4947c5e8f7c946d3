package camt057_test

import (
	"testing"

	"github.com/finwire/mxmessage/document/camt057"
	"github.com/finwire/mxmessage/validation"
)

func ptr[T any](v T) *T { return &v }

func validNotification() camt057.NotificationToReceiveV06 {
	return camt057.NotificationToReceiveV06{
		GrpHdr: camt057.GroupHeader77{
			MsgId:   "C57-001",
			CreDtTm: "2026-08-23T10:15:00+00:00",
		},
		Ntfctn: camt057.AccountNotification16{
			Id: "NTFCTN-001",
			Itm: []camt057.NotificationItem7{{
				Id:  "ITEM-001",
				Amt: camt057.ActiveOrHistoricCurrencyAndAmount{Ccy: "EUR", Value: "1500.00"},
			}},
		},
	}
}

func TestNotificationValid(t *testing.T) {
	m := validNotification()
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.NtfctnToRcv", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}
}

func TestNotificationItemsValidatedRegardlessOfConfig(t *testing.T) {
	m := validNotification()
	m.Ntfctn.Itm[0].UETR = ptr("NOT-A-UETR")

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.NtfctnToRcv", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodePattern {
		t.Errorf("code = %d, want %d", e.Code, validation.CodePattern)
	}
	if e.Path != "Document.NtfctnToRcv.Ntfctn.Itm.UETR" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestNotificationAccountGating(t *testing.T) {
	m := validNotification()
	m.Ntfctn.Acct = &camt057.CashAccount38{
		Id: camt057.AccountIdentification4Choice{IBAN: ptr("not-an-iban")},
	}

	lenient := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &lenient, collector)
	if collector.HasErrors() {
		t.Fatalf("lenient config must skip the optional account, got %v", collector.Errors())
	}

	cfg := validation.DefaultParserConfig()
	collector = validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodePattern {
		t.Fatalf("want one pattern diagnostic, got %v", collector.Errors())
	}
}

func TestNotificationPurposeBounds(t *testing.T) {
	m := validNotification()
	m.Ntfctn.Itm[0].Purp = &camt057.Purpose2Choice{Cd: ptr("SALARY")}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodeTooLong {
		t.Fatalf("want one length diagnostic, got %v", collector.Errors())
	}
}
