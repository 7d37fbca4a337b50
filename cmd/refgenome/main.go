// cmd/refgenome/main.go
package main

import (
	"refgenome/internal/app"
	"refgenome/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
