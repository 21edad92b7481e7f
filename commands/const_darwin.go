package commands

const (
	_etc = "/usr/local/etc/com.github.courseops"
	_var = "/usr/local/var/com.github.courseops"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/github/.google/credentials.json"
)
