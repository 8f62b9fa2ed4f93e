package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/decker502/farmsim/pkg/config"
)

func testFS() (assets, data fstest.MapFS) {
	assets = fstest.MapFS{
		"assets/graphics/soil/o.png": {Data: []byte("png")},
	}
	data = fstest.MapFS{
		"data/config.yaml":  {Data: []byte("tileSize: 64\n")},
		"data/species.yaml": {Data: []byte("species: []\n")},
	}
	return assets, data
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	assets, data := testFS()
	Init(assets, data)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

// TestNotInitialized 未初始化时所有读取都报错
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("assets/test.png"); !errors.Is(err, errNotInitialized) {
		t.Errorf("Open: got %v, want %v", err, errNotInitialized)
	}
	if _, err := ReadFile("data/config.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile: got %v, want %v", err, errNotInitialized)
	}
	if _, err := Glob("data/*.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("Glob: got %v, want %v", err, errNotInitialized)
	}
	if Exists("data/config.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

// TestRouting 按前缀分发，路径标准化
func TestRouting(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer func() { initialized = false }()

	got, err := ReadFile("./data/config.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "tileSize: 64\n" {
		t.Errorf("ReadFile: got %q", got)
	}
	if !Exists("assets/graphics/soil/o.png") {
		t.Error("Expected asset to exist")
	}
	if Exists("assets/graphics/soil/x.png") {
		t.Error("Expected missing asset to not exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil || len(matches) != 2 {
		t.Errorf("Glob: got %v (err %v), want 2 matches", matches, err)
	}

	if _, err := Open("maps/farm.yaml"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

// TestNilAssets 没有贴图目录时按文件不存在处理
func TestNilAssets(t *testing.T) {
	_, data := testFS()
	Init(nil, data)
	defer func() { initialized = false }()

	if _, err := Open("assets/graphics/soil/o.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open: got %v, want %v", err, fs.ErrNotExist)
	}
	if _, err := Stat("data/config.yaml"); err != nil {
		t.Errorf("Stat: unexpected error %v", err)
	}
}

// TestFSWithConfigLoad 组合文件系统可以直接用于加载配置
func TestFSWithConfigLoad(t *testing.T) {
	_, data := testFS()
	Init(nil, data)
	defer func() { initialized = false }()

	if _, err := fs.ReadFile(FS(), config.GameConfigPath); err != nil {
		t.Errorf("ReadFile through FS(): %v", err)
	}
	if _, err := FS().Open("other/file"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("unknown prefix through FS(): got %v, want %v", err, fs.ErrNotExist)
	}
}
