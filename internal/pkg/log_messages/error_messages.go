package log_messages

const (
	ErrorConfigFileNotFound       = "configuration file not found: %v"
	ErrorConfigValidationFailed   = "configuration validation failed: %v"
	ErrorSessionLoginFailed       = "error occurred at session login: %v"
	ErrorSessionLogoutFailed      = "error occurred while closing session: %v"
	ErrorRetrievingSubscriberInfo = "error occurred while getting sub information: %v"
	ErrorAdjustingBalance         = "error occurred while adjusting balance: %v"
	ErrorAdjustingBucket          = "error occurred while adjusting bucket: %v"
	ErrorParsingCommand           = "error occurred while parsing argument: %v"
	ErrorProcessingLine           = "error occurred while processing command line [%s]: %v"
	ErrorWritingReportLine        = "error occurred while writing report line: %v"
	ErrorBuildingSoapRequest      = "error building SOAP request: %v"
	ErrorUnmarshallingSoapBody    = "error unmarshalling SOAP response body: %v"
)
