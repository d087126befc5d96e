package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoAudioContext 没有可用的音频上下文（如测试环境）
var ErrNoAudioContext = errors.New("audio context not available")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, audio and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Audio files that cannot be opened or decoded are reported as errors and
// turned into absent sounds by AudioManager. Sprite images that cannot be
// loaded fall back to a procedurally drawn creature so the game stays playable
// without an asset directory.
//
// This implementation is NOT thread-safe; all loading happens on the game loop.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> Image
	spriteCache   map[string]*ebiten.Image     // sprite ID -> Image (loaded or procedural)
	audioContext  *audio.Context               // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource       // Go Regular
	fontFaceCache map[float64]*text.GoTextFace // size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, may be nil (all audio then fails to load).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		spriteCache:   make(map[string]*ebiten.Image),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadImage loads an image file from disk and caches it for future use.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImage := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImage
	return ebitenImage, nil
}

// SpriteImage 返回精灵图片
// 优先从磁盘加载 entry.Path，失败时按配置的尺寸和颜色绘制一条鱼形占位图
func (rm *ResourceManager) SpriteImage(id string, entry config.SpriteEntry) *ebiten.Image {
	if img, ok := rm.spriteCache[id]; ok {
		return img
	}

	var img *ebiten.Image
	if entry.Path != "" {
		loaded, err := rm.LoadImage(entry.Path)
		if err != nil {
			log.Printf("[ResourceManager] Sprite %s: %v, using placeholder", id, err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		clr, err := config.ParseHexColor(entry.Color)
		if err != nil {
			clr = config.AccentColor
		}
		img = drawPlaceholderSprite(entry.Width, entry.Height, clr)
	}

	rm.spriteCache[id] = img
	return img
}

// drawPlaceholderSprite 用矢量图形绘制一条朝右的鱼
func drawPlaceholderSprite(width, height float64, body color.Color) *ebiten.Image {
	img := ebiten.NewImage(int(width), int(height))
	w, h := float32(width), float32(height)

	// 尾巴
	vector.FillRect(img, 0, h*0.2, w*0.12, h*0.6, body, true)
	vector.FillCircle(img, w*0.2, h*0.5, h*0.18, body, true)

	// 身体：两个重叠的圆近似椭圆
	r := h * 0.38
	vector.FillCircle(img, w*0.52, h*0.5, r, body, true)
	vector.FillCircle(img, w*0.68, h*0.5, r*0.9, body, true)

	// 眼睛
	vector.FillCircle(img, w*0.78, h*0.42, h*0.08, color.White, true)
	vector.FillCircle(img, w*0.80, h*0.42, h*0.04, color.Black, true)
	return img
}

// LoadPlayer 加载音频文件并创建播放器，实现 PlayerLoader
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
//
// 参数：
//   - path: 音频文件路径
//   - loop: true 时包装为无限循环（背景音乐）
func (rm *ResourceManager) LoadPlayer(path string, loop bool) (Player, error) {
	if rm.audioContext == nil {
		return nil, ErrNoAudioContext
	}

	// Read the entire file into memory so the stream can seek without keeping the file open
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	sampleRate := rm.audioContext.SampleRate()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// Font 返回指定字号的 Go Regular 字体
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// goregular 是内置字体数据，解析失败说明构建本身有问题
			panic(fmt.Sprintf("failed to parse built-in font: %v", err))
		}
		rm.fontSource = source
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}
