package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/semperfinish/intake/internal/config"
	"github.com/semperfinish/intake/internal/csrf"
	"github.com/semperfinish/intake/internal/gate"
	"github.com/semperfinish/intake/internal/gelf"
	"github.com/semperfinish/intake/internal/handler"
	"github.com/semperfinish/intake/internal/notify"
	"github.com/semperfinish/intake/internal/router"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	if cfg.CSRFSecret == "" {
		log.Printf("Warning: no signing secret configured, form verification will fail closed")
	}
	csrfSvc := csrf.New(cfg.CSRFSecret, !cfg.Dev())
	admission := gate.New(csrfSvc)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	sesClient := sesv2.NewFromConfig(awsCfg)

	// One dispatcher per submission kind; they share the email settings but
	// post to different Slack channels.
	bookingDispatch := notify.NewDispatcher(
		notify.NewEmailChannel(sesClient, cfg.EmailFrom, cfg.EmailTo),
		notify.NewSlackChannel(cfg.SlackBotToken, cfg.SlackBookingChannel),
	)
	testimonialDispatch := notify.NewDispatcher(
		notify.NewEmailChannel(sesClient, cfg.EmailFrom, cfg.EmailTo),
		notify.NewSlackChannel(cfg.SlackBotToken, cfg.SlackTestimonialChannel),
	)

	formH := handler.NewFormHandler(csrfSvc, admission, cfg)
	notifyH := handler.NewNotifyHandler(bookingDispatch, testimonialDispatch)

	r := router.New(cfg, formH, notifyH)

	log.Printf("intake gateway starting on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
