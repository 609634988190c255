package consts

const (
	// Separators the operator may use between tokens on a command line.
	CommandSeparators = `[\t\s;,:]+`

	// Amount markers. Numbers allow up to two decimal digits.
	DebitMainPattern   = `(?:MAIN|main)\s-(\d+\.?\d{0,2})`
	DebitBonusPattern  = `(?:BONUS|bonus)\s-(\d+\.?\d{0,2})`
	CreditMainPattern  = `(?:MAIN|main)\s\+(\d+\.?\d{0,2})`
	CreditBonusPattern = `(?:BONUS|bonus)\s\+(\d+\.?\d{0,2})`

	// Line state shapes carried in the account status field.
	DeactivatedStatePattern = `^\w{3}_DE\w{4,6}\d*`
	ValidStatePattern       = `^\w{3}_VA\w{3}\d*`

	// Bundle blocks inside the joined bundle-query result text.
	BundlePattern = `Bundle\sID\s(bdl\w+|\d+_\w\w|\d\d{1})\sBundle\sState\s(\S*)\s` +
		`End\sDate\sTime\s(\S*)\sTariff\sPlan\sCOSP\sID\s(\S*)\s` +
		`Bucket/Discount\sID\s1\s(\S*)\sBucket/UBD\sCounter\s1\s(\S*)`
	AlwaysOnBundlePattern = `Bundle\sID\s(sbcALWAYSON)\sBundle\sState\s(\S*)\s` +
		`End\sDate\sTime\s(\S*)\sTariff\sPlan\sCOSP\sID\s(\S*)\s` +
		`Bucket/Discount\sID\s1\s(\S*)\sBucket/UBD\sCounter\s1\s(\S*)`
)
