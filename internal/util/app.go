package util

func GetAppName() string {
	return "Name2ECert"
}

func GetAppVersion() string {
	return "1.0.0"
}
