package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/facebookgo/grace/gracehttp"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/pron-assessment-wrapper/internal/api"
	"github.com/airenas/pron-assessment-wrapper/internal/assess"
	"github.com/airenas/pron-assessment-wrapper/internal/domain"
	"github.com/airenas/pron-assessment-wrapper/internal/utils"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const serviceName = "Pronunciation Assessment Middleware"

// Assessor makes the pronunciation assessment
type Assessor interface {
	Assess(ctx context.Context, in *assess.Input) (*assess.Result, error)
}

// Data keeps data required for service work
type Data struct {
	Port     int
	Assessor Assessor
	// AzureConfigured and Region are reported by the status endpoint
	AzureConfigured bool
	Region          string
	// WriteTimeout must cover audio download and the assessment call
	WriteTimeout time.Duration
}

// StartWebServer starts echo web service
func StartWebServer(data *Data) (<-chan struct{}, error) {
	goapp.Log.Info().Msgf("Starting pronunciation wrapper service at %d", data.Port)
	if err := validate(data); err != nil {
		return nil, err
	}

	portStr := strconv.Itoa(data.Port)

	e := initRoutes(data)

	e.Server.Addr = ":" + portStr
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = data.WriteTimeout

	gracehttp.SetLogger(log.New(goapp.Log, "", 0))

	res := make(chan struct{}, 1)
	go func() {
		defer close(res)
		if err := gracehttp.Serve(e.Server); err != nil {
			goapp.Log.Error().Err(err).Msg("can't start web server")
		}
		goapp.Log.Info().Msg("exit http routine")
	}()
	return res, nil
}

var promMdlw *prometheus.Prometheus

func init() {
	promMdlw = prometheus.NewPrometheus("pron_wrapper", nil)
}

func initRoutes(data *Data) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: utils.NewID}))
	promMdlw.Use(e)

	e.GET("/", status(data))
	e.GET("/live", live(data))
	e.GET("/languages", languages(data))
	e.POST("/assess", assessHandler(data))

	goapp.Log.Info().Msg("Routes:")
	for _, r := range e.Routes() {
		goapp.Log.Info().Msgf("  %s %s", r.Method, r.Path)
	}
	return e
}

func live(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"service":"OK"}`))
	}
}

func status(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, &api.Status{Status: "running", Service: serviceName,
			AzureConfigured: data.AzureConfigured, Region: data.Region})
	}
}

func languages(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.Languages)
	}
}

func assessHandler(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		ctx := utils.WithRequestID(c.Request().Context(), c.Response().Header().Get(echo.HeaderXRequestID))
		var req api.AssessRequest
		if err := c.Bind(&req); err != nil {
			goapp.Log.Warn().Err(err).Str("rID", utils.RequestID(ctx)).Msg("can't bind")
			return writeFailure(c, domain.WrapError(domain.KindMissingInput, "No JSON data", err))
		}
		in := &assess.Input{AudioURL: req.AudioURL, ReferenceText: req.ReferenceText, Language: req.Language}
		if strings.TrimSpace(in.ReferenceText) == "" {
			in.ReferenceText = req.Text
		}
		if err := assess.Prepare(in); err != nil {
			return writeFailure(c, err)
		}
		res, err := data.Assessor.Assess(ctx, in)
		if err != nil {
			return writeFailure(c, err)
		}
		countResult("ok")
		return c.JSON(http.StatusOK, &api.AssessResponse{Success: true, Assessment: res.Assessment, Feedback: res.Feedback})
	}
}

func writeFailure(c echo.Context, err error) error {
	kind := domain.KindOf(err)
	res := &api.AssessResponse{Success: false, Error: err.Error(), ErrorType: kind.String()}
	var de *domain.Error
	if errors.As(err, &de) {
		res.Details = de.Details
		if kind == domain.KindMissingInput {
			res.Error = de.Msg
		}
	}
	if kind != domain.KindMissingInput {
		res.Feedback = assess.FailureFeedback
	}
	countResult(kind.String())
	return c.JSON(httpCode(kind), res)
}

// httpCode for the failure, vendor failures are returned as 200 so the chatbot can show the body
func httpCode(kind domain.Kind) int {
	switch kind {
	case domain.KindMissingInput, domain.KindAudioUnavailable:
		return http.StatusBadRequest
	case domain.KindNotConfigured, domain.KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

func validate(data *Data) error {
	if data.Assessor == nil {
		return fmt.Errorf("no Assessor")
	}
	if data.WriteTimeout <= 0 {
		return fmt.Errorf("wrong WriteTimeout %v", data.WriteTimeout)
	}
	return nil
}
