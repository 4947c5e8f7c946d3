// Package sample builds fully-populated example envelopes for each
// supported business message. Generated messages validate clean under the
// default configuration; scenario files can override individual fields.
package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/appheader"
	"github.com/finwire/mxmessage/document/camt029"
	"github.com/finwire/mxmessage/document/camt056"
	"github.com/finwire/mxmessage/document/camt057"
	"github.com/finwire/mxmessage/document/pacs008"
	"github.com/finwire/mxmessage/document/pacs009"
	"github.com/finwire/mxmessage/validation"
)

var (
	bicPool = []string{
		"DEUTDEFFXXX", "CHASUS33XXX", "BNPAFRPPXXX", "HSBCGB2LXXX",
		"UBSWCHZH80A", "INGBNL2AXXX", "CITIUS33XXX", "BARCGB22XXX",
	}
	currencyPool = []string{"EUR", "USD", "GBP", "CHF"}
	cityPool     = []string{"Frankfurt", "London", "Paris", "Zurich", "Amsterdam"}
	countryPool  = []string{"DE", "GB", "FR", "CH", "NL"}
	namePool     = []string{
		"Acme Industries", "Borealis Trading", "Cobalt Logistics",
		"Delta Components", "Everfield Partners",
	}
)

// Generate builds a sample envelope for the given message type (short or
// full form). Message types without a schema yield a 9997 error.
func Generate(messageType string) (*mxmessage.Envelope, error) {
	full := mxmessage.FullForm(messageType)
	if full == "" {
		full = messageType
	}
	var doc mxmessage.Document
	switch full {
	case "pacs.008.001.08":
		doc = mxmessage.Document{FIToFICstmrCdtTrf: samplePacs008()}
	case "pacs.009.001.08":
		doc = mxmessage.Document{FinInstnCdtTrf: samplePacs009()}
	case "camt.029.001.09":
		doc = mxmessage.Document{RsltnOfInvstgtn: sampleCamt029()}
	case "camt.056.001.08":
		doc = mxmessage.Document{FIToFIPmtCxlReq: sampleCamt056()}
	case "camt.057.001.06":
		doc = mxmessage.Document{NtfctnToRcv: sampleCamt057()}
	default:
		return nil, sampleError("no sample builder for message type %q", messageType)
	}
	return mxmessage.NewEnvelope(sampleHeader(full), doc), nil
}

// GenerateWithScenario builds a sample envelope and applies the named
// scenario's overrides. An empty scenario name selects the first scenario
// declared for the message type.
func GenerateWithScenario(messageType, scenarioName string, cfg ScenarioConfig) (*mxmessage.Envelope, error) {
	env, err := Generate(messageType)
	if err != nil {
		return nil, err
	}
	sc, err := FindScenario(cfg, messageType, scenarioName)
	if err != nil {
		return nil, err
	}
	return sc.Apply(env)
}

func sampleError(format string, args ...any) error {
	return validation.NewValidationError(validation.CodeSampleError, fmt.Sprintf(format, args...))
}

func sampleHeader(messageType string) *appheader.BusinessApplicationHeaderV02 {
	return &appheader.BusinessApplicationHeaderV02{
		Fr:        headerParty(pick(bicPool)),
		To:        headerParty(pick(bicPool)),
		BizMsgIdr: randomRef("MSG"),
		MsgDefIdr: messageType,
		BizSvc:    "swift.cbprplus.02",
		CreDt:     nowOffset(),
	}
}

func headerParty(bic string) appheader.Party44Choice {
	return appheader.Party44Choice{
		FIId: &appheader.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: appheader.FinancialInstitutionIdentification18{BICFI: bic},
		},
	}
}

func samplePacs008() *pacs008.FIToFICustomerCreditTransferV08 {
	ccy := pick(currencyPool)
	return &pacs008.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs008.GroupHeader93{
			MsgId:   randomRef("P8"),
			CreDtTm: nowOffset(),
			NbOfTxs: "1",
			SttlmInf: pacs008.SettlementInstruction7{
				SttlmMtd: pacs008.SettlementMethodINDA,
			},
		},
		CdtTrfTxInf: pacs008.CreditTransferTransaction39{
			PmtId: pacs008.PaymentIdentification7{
				InstrId:    randomRef("INSTR"),
				EndToEndId: randomRef("E2E"),
				UETR:       uuid.NewString(),
			},
			IntrBkSttlmAmt: pacs008.ActiveCurrencyAndAmount{Ccy: ccy, Value: randomAmount()},
			IntrBkSttlmDt:  today(),
			ChrgBr:         pacs008.ChargeBearerSHAR,
			InstgAgt:       pacs008Agent(pick(bicPool)),
			InstdAgt:       pacs008Agent(pick(bicPool)),
			Dbtr:           pacs008Party(pick(namePool)),
			DbtrAcct:       pacs008Account(randomIBAN()),
			DbtrAgt:        pacs008Agent(pick(bicPool)),
			CdtrAgt:        pacs008Agent(pick(bicPool)),
			Cdtr:           pacs008Party(pick(namePool)),
			CdtrAcct:       pacs008Account(randomIBAN()),
			RmtInf:         &pacs008.RemittanceInformation16{Ustrd: ptr("Invoice " + randomDigits(6))},
		},
	}
}

func pacs008Agent(bic string) pacs008.BranchAndFinancialInstitutionIdentification6 {
	return pacs008.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: pacs008.FinancialInstitutionIdentification18{BICFI: &bic},
	}
}

func pacs008Party(name string) pacs008.PartyIdentification135 {
	return pacs008.PartyIdentification135{
		Nm: &name,
		PstlAdr: &pacs008.PostalAddress24{
			TwnNm: ptr(pick(cityPool)),
			Ctry:  ptr(pick(countryPool)),
		},
	}
}

func pacs008Account(iban string) *pacs008.CashAccount38 {
	return &pacs008.CashAccount38{
		Id: pacs008.AccountIdentification4Choice{IBAN: &iban},
	}
}

func samplePacs009() *pacs009.FinancialInstitutionCreditTransferV08 {
	ccy := pick(currencyPool)
	return &pacs009.FinancialInstitutionCreditTransferV08{
		GrpHdr: pacs009.GroupHeader93{
			MsgId:   randomRef("P9"),
			CreDtTm: nowOffset(),
			NbOfTxs: "1",
			SttlmInf: pacs009.SettlementInstruction7{
				SttlmMtd: pacs009.SettlementMethodINDA,
			},
		},
		CdtTrfTxInf: pacs009.CreditTransferTransaction36{
			PmtId: pacs009.PaymentIdentification7{
				InstrId:    randomRef("INSTR"),
				EndToEndId: randomRef("E2E"),
				UETR:       uuid.NewString(),
			},
			IntrBkSttlmAmt: pacs009.ActiveCurrencyAndAmount{Ccy: ccy, Value: randomAmount()},
			IntrBkSttlmDt:  today(),
			InstgAgt:       pacs009Agent(pick(bicPool)),
			InstdAgt:       pacs009Agent(pick(bicPool)),
			Dbtr:           pacs009Agent(pick(bicPool)),
			Cdtr:           pacs009Agent(pick(bicPool)),
		},
	}
}

func pacs009Agent(bic string) pacs009.BranchAndFinancialInstitutionIdentification6 {
	return pacs009.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: pacs009.FinancialInstitutionIdentification18{BICFI: &bic},
	}
}

func sampleCamt029() *camt029.ResolutionOfInvestigationV09 {
	conf := camt029.CancellationStatusCNCL
	return &camt029.ResolutionOfInvestigationV09{
		Assgnmt: camt029.CaseAssignment5{
			Id:      randomRef("ASGN"),
			Assgnr:  camt029Agent(pick(bicPool)),
			Assgne:  camt029Agent(pick(bicPool)),
			CreDtTm: nowOffset(),
		},
		Sts: camt029.InvestigationStatus5Choice{Conf: &conf},
		CxlDtls: camt029.UnderlyingTransaction22{
			TxInfAndSts: camt029.PaymentTransaction102{
				CxlStsId: randomRef("CXLST"),
				RslvdCase: camt029.Case5{
					Id:    randomRef("CASE"),
					Cretr: camt029Agent(pick(bicPool)),
				},
				OrgnlGrpInf: camt029.OriginalGroupInformation29{
					OrgnlMsgId:   randomRef("ORIG"),
					OrgnlMsgNmId: "pacs.008.001.08",
					OrgnlCreDtTm: ptr(nowOffset()),
				},
				OrgnlEndToEndId: ptr(randomRef("E2E")),
				OrgnlUETR:       uuid.NewString(),
			},
		},
	}
}

func camt029Agent(bic string) camt029.Party40Choice {
	return camt029.Party40Choice{
		Agt: &camt029.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: camt029.FinancialInstitutionIdentification18{BICFI: &bic},
		},
	}
}

func sampleCamt056() *camt056.FIToFIPaymentCancellationRequestV08 {
	return &camt056.FIToFIPaymentCancellationRequestV08{
		Assgnmt: camt056.CaseAssignment5{
			Id:      randomRef("ASGN"),
			Assgnr:  camt056Agent(pick(bicPool)),
			Assgne:  camt056Agent(pick(bicPool)),
			CreDtTm: nowOffset(),
		},
		Case: &camt056.Case5{
			Id:    randomRef("CASE"),
			Cretr: camt056Agent(pick(bicPool)),
		},
		Undrlyg: []camt056.UnderlyingTransaction23{{
			TxInf: []camt056.PaymentTransaction106{{
				CxlId: ptr(randomRef("CXL")),
				OrgnlGrpInf: &camt056.OriginalGroupInformation29{
					OrgnlMsgId:   randomRef("ORIG"),
					OrgnlMsgNmId: "pacs.008.001.08",
				},
				OrgnlEndToEndId: ptr(randomRef("E2E")),
				OrgnlUETR:       ptr(uuid.NewString()),
				CxlRsnInf: []camt056.PaymentCancellationReason5{{
					Rsn:      &camt056.CancellationReason33Choice{Cd: ptr("DUPL")},
					AddtlInf: []string{"Duplicate payment detected"},
				}},
			}},
		}},
	}
}

func camt056Agent(bic string) camt056.Party40Choice {
	return camt056.Party40Choice{
		Agt: &camt056.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: camt056.FinancialInstitutionIdentification18{BICFI: &bic},
		},
	}
}

func sampleCamt057() *camt057.NotificationToReceiveV06 {
	iban := randomIBAN()
	return &camt057.NotificationToReceiveV06{
		GrpHdr: camt057.GroupHeader77{
			MsgId:   randomRef("C57"),
			CreDtTm: nowOffset(),
		},
		Ntfctn: camt057.AccountNotification16{
			Id: randomRef("NTFCTN"),
			Acct: &camt057.CashAccount38{
				Id: camt057.AccountIdentification4Choice{IBAN: &iban},
			},
			AcctSvcr: camt057Agent(pick(bicPool)),
			Itm: []camt057.NotificationItem7{{
				Id:         randomRef("ITEM"),
				EndToEndId: ptr(randomRef("E2E")),
				UETR:       ptr(uuid.NewString()),
				Amt:        camt057.ActiveOrHistoricCurrencyAndAmount{Ccy: pick(currencyPool), Value: randomAmount()},
				XpctdValDt: ptr(today()),
				DbtrAgt:    camt057Agent(pick(bicPool)),
			}},
		},
	}
}

func camt057Agent(bic string) *camt057.BranchAndFinancialInstitutionIdentification6 {
	return &camt057.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: camt057.FinancialInstitutionIdentification18{BICFI: &bic},
	}
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

func ptr[T any](v T) *T { return &v }

func randomRef(prefix string) string {
	return prefix + "-" + randomDigits(8)
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

func randomAmount() string {
	return fmt.Sprintf("%d.%02d", rand.Intn(999000)+1000, rand.Intn(100))
}

func randomIBAN() string {
	return "DE" + randomDigits(2) + randomDigits(18)
}

// nowOffset renders the current time with an explicit UTC offset; the
// schema rejects the bare Z suffix.
func nowOffset() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05") + "+00:00"
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
