package validation

func init() {
	// textual role/type tokens accepted on token endpoints
	MustRegisterAlias("tokenrole", "oneof=publisher audience")
	MustRegisterAlias("tokentype", "oneof=uid userAccount")
}
