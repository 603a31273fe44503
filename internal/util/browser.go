package util

import (
	"os/exec"
	"runtime"
)

// browserCommands 返回当前系统的浏览器启动命令，按尝试顺序排列
func browserCommands(url string) [][]string {
	switch runtime.GOOS {
	case "windows":
		// rundll32 在 Windows 7 上比 cmd /c start 稳定，explorer 作备选
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"google-chrome", url},
			{"firefox", url},
			{"chromium-browser", url},
			{"sensible-browser", url},
		}
	}
}

// OpenBrowser 打开默认浏览器，启动失败时依次尝试备选命令
func OpenBrowser(url string) error {
	var lastErr error
	for _, args := range browserCommands(url) {
		if err := exec.Command(args[0], args[1:]...).Start(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
