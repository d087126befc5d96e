package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/gonewx/fishtap/data"
	"github.com/gonewx/fishtap/pkg/app"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 非 POSIX 平台（Windows）使用固定的竖屏窗口，其余平台使用配置中的尺寸
	width, height := gameApp.WindowSize()
	if runtime.GOOS == "windows" {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
