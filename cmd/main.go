package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/pron-assessment-wrapper/internal/assess"
	"github.com/airenas/pron-assessment-wrapper/internal/audio"
	"github.com/airenas/pron-assessment-wrapper/internal/azure"
	"github.com/airenas/pron-assessment-wrapper/internal/service"
	"github.com/labstack/gommon/color"
)

func main() {
	goapp.StartWithDefault()

	printBanner()

	cfg := goapp.Config
	cfg.SetDefault("port", 5000)
	cfg.SetDefault("azure.speech.region", "canadaeast")
	cfg.SetDefault("azure.timeout", "30s")
	cfg.SetDefault("audio.timeout", "30s")
	cfg.SetDefault("audio.maxSize", 20*1024*1024)

	azureCfg := azure.Config{
		Key:     cfg.GetString("azure.speech.key"),
		Region:  cfg.GetString("azure.speech.region"),
		URL:     cfg.GetString("azure.speech.url"),
		Timeout: cfg.GetDuration("azure.timeout"),
	}
	if !azureCfg.Configured() {
		goapp.Log.Warn().Msg("Azure key not configured, assessments will fail")
	}
	client, err := azure.NewClient(azureCfg)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init azure client")
	}
	loader, err := audio.NewLoader(cfg.GetDuration("audio.timeout"), cfg.GetInt64("audio.maxSize"))
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init audio loader")
	}
	assessor, err := assess.NewAssessor(loader, client)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init assessor")
	}

	data := &service.Data{}
	data.Port = cfg.GetInt("port")
	data.Assessor = assessor
	data.AzureConfigured = azureCfg.Configured()
	data.Region = azureCfg.Region
	data.WriteTimeout = cfg.GetDuration("audio.timeout") + azureCfg.Timeout + 10*time.Second

	doneCh, err := service.StartWebServer(data)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't start web server")
	}

	/////////////////////// Waiting for terminate
	waitCh := make(chan os.Signal, 2)
	signal.Notify(waitCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-waitCh:
		goapp.Log.Info().Msg("Got exit signal")
	case <-doneCh:
		goapp.Log.Info().Msg("Service exit")
	}
	select {
	case <-doneCh:
		goapp.Log.Info().Msg("All code returned. Now exit. Bye")
	case <-time.After(time.Second * 15):
		goapp.Log.Warn().Msg("Timeout gracefull shutdown")
	}
}

var (
	version = "DEV"
)

func printBanner() {
	banner :=
		`
    PRONUNCIATION ASSESSMENT WRAPPER v: %s
	
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("https://github.com/airenas/pron-assessment-wrapper"))
}
