package export

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// DefaultPDFTimeout bounds a single headless print
const DefaultPDFTimeout = 30 * time.Second

// A4 paper size in inches
const (
	A4Width  = 8.27
	A4Height = 11.69
)

// PDFOptions configures headless printing
type PDFOptions struct {
	// ChromePath overrides browser discovery. Empty uses CHROME_PATH, then chromedp's lookup.
	ChromePath  string
	Timeout     time.Duration
	PaperWidth  float64
	PaperHeight float64
	Logger      logrus.FieldLogger
}

func (o PDFOptions) withDefaults() PDFOptions {
	if o.ChromePath == "" {
		o.ChromePath = os.Getenv("CHROME_PATH")
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultPDFTimeout
	}
	if o.PaperWidth <= 0 {
		o.PaperWidth = A4Width
	}
	if o.PaperHeight <= 0 {
		o.PaperHeight = A4Height
	}
	if o.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		o.Logger = logger
	}
	return o
}

// ChromeAvailable reports whether a Chrome or Chromium binary can be found.
func ChromeAvailable() bool {
	if path := os.Getenv("CHROME_PATH"); path != "" {
		_, err := os.Stat(path)
		return err == nil
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// RenderPDF prints an HTML page to PDF in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func RenderPDF(ctx context.Context, html []byte, opts PDFOptions) ([]byte, error) {
	opts = opts.withDefaults()
	log := opts.Logger.WithField("component", "pdf")
	log.WithField("bytes", len(html)).Debug("starting headless browser")

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		// Load the page straight into the blank frame rather than through a file or server.
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &ExportError{Format: FormatPDF, Message: "browser printing failed", Cause: err}
	}

	log.WithField("bytes", len(pdf)).Debug("printed pdf")
	return pdf, nil
}
