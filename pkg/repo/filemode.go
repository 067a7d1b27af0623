package repo

import (
	"os"

	"github.com/fcasibu/minigit/pkg/object"
)

func modeFromFileInfo(info os.FileInfo) uint32 {
	if info.Mode()&0o111 != 0 {
		return object.ModeExecutable
	}
	return object.ModeFile
}
