package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/video-transcribe/app/internal/client"
	"github.com/video-transcribe/app/internal/view"
	"github.com/video-transcribe/app/internal/web"
)

func main() {
	addr := flag.String("addr", ":8501", "address to listen on")
	disableCORSCheck := flag.Bool("disable-cors-check", false, "disable the cross-origin check on form posts (insecure, local demo only)")
	disableXSRF := flag.Bool("disable-xsrf", false, "disable XSRF token validation on form posts (insecure, local demo only)")
	flag.Parse()

	v := view.New(client.New(client.DefaultBaseURL))
	srv := web.NewServer(v, web.Options{
		DisableOriginCheck: *disableCORSCheck,
		DisableXSRF:        *disableXSRF,
	})

	log.Printf("Starting frontend on %s (backend at %s)", *addr, client.DefaultBaseURL)

	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
