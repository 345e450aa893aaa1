package main

import (
	"context"
	"flag"
	"runtime"

	"github.com/golang/glog"
	"github.com/leterax/pgr-skeleton/internal/openglhelper"
	"github.com/leterax/pgr-skeleton/internal/platform"
	"github.com/leterax/pgr-skeleton/pkg/app"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/objects"
	"github.com/leterax/pgr-skeleton/pkg/scene"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Only glog's own flags are registered
	flag.Parse()
	defer glog.Flush()

	cfg, cfgPath, err := config.LoadOrDefault()
	if err != nil {
		glog.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		glog.Infof("Using config %s", cfgPath)
	}

	window, err := openglhelper.NewWindow(app.WindowWidth, app.WindowHeight, app.WindowTitle, cfg.Render.VSync)
	if err != nil {
		glog.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	// Shaders, buffers and the initial application state
	shader, err := objects.LoadShaderProgram(cfg.Render.VertexShader, cfg.Render.FragmentShader)
	if err != nil {
		glog.Fatalf("Failed to load shader program: %v", err)
	}

	sceneObjects, err := buildScene(shader, cfg)
	if err != nil {
		glog.Fatalf("Failed to build scene: %v", err)
	}

	window.SetCursorHidden(true)

	application := app.New(window, cfg, sceneObjects)
	application.SetCloseHandler(shader.Delete)

	width, height := window.FramebufferSize()
	application.Dispatch(app.Event{Kind: app.EventReshape, Width: width, Height: height})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads <-chan *config.Config
	if cfgPath != "" {
		reloads, err = config.Watch(ctx, cfgPath, window.Wake)
		if err != nil {
			glog.Warningf("Config hot reload disabled: %v", err)
		}
	}

	application.Run(ctx, platform.NewEventQueue(window), reloads)
}

// buildScene creates the objects named in the config
func buildScene(shader *objects.ShaderProgram, cfg *config.Config) (scene.ObjectList, error) {
	var list scene.ObjectList

	if cfg.Scene.Triangle {
		list = append(list, objects.NewTriangle(shader))
	}

	if cfg.Scene.Mesh != "" {
		mesh, err := objects.NewSingleMesh(shader, cfg.Scene.Mesh)
		if err != nil {
			list.Delete()
			return nil, err
		}
		list = append(list, mesh)
	}

	return list, nil
}
