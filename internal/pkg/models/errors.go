package models

// Failure-class errors. Decision outcomes (insufficient balance, blocked
// line states, missing bucket id) are deliberately not represented here;
// those are AdjustmentOutcome values.
var (
	ErrorMalformedCommand = &CustomError{
		Code:    "CREDIT_DEBIT_MALFORMED_COMMAND",
		Message: "no subscriber identifier found in command line",
	}
	ErrorSubscriberLookupFailed = &CustomError{
		Code:    "CREDIT_DEBIT_SUBSCRIBER_LOOKUP_FAILED",
		Message: "subscriber query failed",
	}
	ErrorAdjustmentTransportFailed = &CustomError{
		Code:    "CREDIT_DEBIT_ADJUSTMENT_TRANSPORT_FAILED",
		Message: "adjustment request failed",
	}
	ErrorSessionLoginFailed = &CustomError{
		Code:    "CREDIT_DEBIT_SESSION_LOGIN_FAILED",
		Message: "session login failed",
	}
	ErrorEmptySoapResponse = &CustomError{
		Code:    "CREDIT_DEBIT_EMPTY_SOAP_RESPONSE",
		Message: "SOAP response carried no result values",
	}
)
