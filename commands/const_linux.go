package commands

const (
	_etc = "/usr/local/etc/courseops"
	_var = "/usr/local/var/courseops"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/github/.google/credentials.json"
)
