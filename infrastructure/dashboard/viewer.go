package dashboard

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// SystemViewer abre o dashboard no visualizador de imagens do sistema
type SystemViewer struct{}

// Available indica se existe uma tela para exibir a imagem
func (SystemViewer) Available() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}

// Open dispara o visualizador sem esperar que ele termine
func (SystemViewer) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "erro ao abrir visualizador para %s", path)
	}

	return nil
}
