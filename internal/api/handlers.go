package api

import (
	"bytes"
	"errors"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/util"
)

// Options tune the HTTP layer.
type Options struct {
	MaxUploadBytes int64
	MaxLogoPixels  int // <= 0 means imagepkg.DefaultMaxPixels
	JPEGQuality    int
	Limiter        *RateLimiter // nil disables rate limiting
	Logger         *slog.Logger
}

// Server serves the poster API.
type Server struct {
	gen       *poster.Generator
	maxUpload int64
	maxPixels int
	quality   int
	limiter   *RateLimiter
	logger    *slog.Logger
}

func NewServer(gen *poster.Generator, opt Options) *Server {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.MaxUploadBytes <= 0 {
		opt.MaxUploadBytes = 10 << 20
	}
	return &Server{
		gen:       gen,
		maxUpload: opt.MaxUploadBytes,
		maxPixels: opt.MaxLogoPixels,
		quality:   opt.JPEGQuality,
		limiter:   opt.Limiter,
		logger:    opt.Logger,
	}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func aspectRatiosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":       poster.DefaultAspect.Label,
		"aspect_ratios": poster.AspectRatios(),
	})
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

type posterRequest struct {
	Prompt      string `form:"prompt" json:"prompt"`
	Subtitle    string `form:"subtitle" json:"subtitle"`
	Details     string `form:"details" json:"details"`
	AspectRatio string `form:"aspect_ratio" json:"aspect_ratio"`
	Format      string `form:"format" json:"format"`
	QRText      string `form:"qr_text" json:"qr_text"`
	LogoURL     string `form:"logo_url" json:"logo_url"`
}

// posterHandler accepts multipart (with an optional "logo" file) or JSON and
// answers with the encoded poster.
func (s *Server) posterHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)

	var req posterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := imagepkg.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logo, logoErr := s.readLogo(c, req.LogoURL)
	if logoErr != nil {
		s.logger.Warn("logo unreadable, continuing without it", "error", logoErr)
	}

	res := s.gen.Generate(c.Request.Context(), poster.Request{
		Prompt:      req.Prompt,
		Subtitle:    req.Subtitle,
		Details:     req.Details,
		Logo:        logo,
		AspectRatio: req.AspectRatio,
		QRText:      req.QRText,
	})

	buf := new(bytes.Buffer)
	if err := imagepkg.Encode(buf, res.Image, format, s.quality); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Poster-Aspect", res.Aspect.Label)
	c.Header("X-Poster-Background", backgroundState(res))
	c.Header("X-Poster-Logo", logoState(res, logoErr != nil))
	c.Data(http.StatusOK, imagepkg.ContentType(format), buf.Bytes())
}

// readLogo returns the uploaded logo, or the one at logoURL. (nil, nil) means
// no logo was supplied. logoURL must point at a public http(s) host.
func (s *Server) readLogo(c *gin.Context, logoURL string) (image.Image, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("logo")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			return nil, err
		default:
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return nil, err
			}
			return imagepkg.DecodeImageLimit(data, s.maxPixels)
		}
	}
	if logoURL != "" {
		if err := util.CheckPublicURL(c.Request.Context(), logoURL); err != nil {
			return nil, err
		}
		return imagepkg.DownloadImage(c.Request.Context(), logoURL, s.maxPixels)
	}
	return nil, nil
}

func backgroundState(res poster.Result) string {
	if res.BackgroundFallback {
		return "fallback"
	}
	return "generated"
}

func logoState(res poster.Result, unreadable bool) string {
	switch {
	case res.LogoApplied:
		return "applied"
	case res.LogoDropped || unreadable:
		return "dropped"
	}
	return "none"
}
