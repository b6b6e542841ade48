package downdetect

var downdetectService = &DowndetectService{}

func GetDowndetectService() *DowndetectService {
	return downdetectService
}
