package charting

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/sungod/analytics"
	"github.com/fernandosanchezjr/sungod/backend/certs"
	url2 "github.com/fernandosanchezjr/sungod/backend/url"
	"github.com/fernandosanchezjr/sungod/config"
	"github.com/fernandosanchezjr/sungod/utils"
	"github.com/fernandosanchezjr/sungod/xorwow"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"time"
)

// Service serves reports and raw bytes for seeded generators. Every request
// builds its own generator, so nothing is shared between handlers except the
// report cache.
type Service struct {
	cfg    config.Server
	cache  *ttlcache.Cache
	router *httprouter.Router
	server *http.Server
}

func NewService(cfg config.Server) *Service {
	cs := &Service{
		cfg:    cfg,
		cache:  ttlcache.NewCache(),
		router: httprouter.New(),
	}
	cs.router.GET("/histogram/:seed", cs.GetHistogram)
	cs.router.GET("/report/:seed", cs.GetReport)
	cs.router.GET("/bytes/:seed/:count", cs.GetBytes)
	cs.server = &http.Server{Addr: cfg.Address, Handler: cs.router}
	return cs
}

func (cs *Service) Handler() http.Handler {
	return cs.router
}

func (cs *Service) Start() error {
	var err error
	log.WithFields(log.Fields{
		"address": cs.cfg.Address,
		"tls":     cs.cfg.TLS,
	}).Info("Starting service")
	if cs.cfg.TLS {
		var cert tls.Certificate
		if cert, err = certs.GetCert(utils.GetSubFolder(certs.CertsPath), "https", cs.cfg.Hosts); err != nil {
			return err
		}
		cs.server.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		err = cs.server.ListenAndServeTLS("", "")
	} else {
		err = cs.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (cs *Service) Stop(ctx context.Context) error {
	defer cs.cache.Close()
	return cs.server.Shutdown(ctx)
}

// Report analyzes samples words of NewSeeded(seed), reusing a cached result
// while it lives.
func (cs *Service) Report(seed uint64, samples int) *analytics.Report {
	key := fmt.Sprintf("%x/%d", seed, samples)
	if cached, found := cs.cache.Get(key); found {
		return cached.(*analytics.Report)
	}
	report := analytics.Analyze(xorwow.NewSeeded(seed), samples)
	cs.cache.SetWithTTL(key, report, cs.cfg.CacheTTL)
	return report
}

func (cs *Service) parseRequest(
	w http.ResponseWriter,
	request *http.Request,
	params httprouter.Params,
) (seed uint64, serviceParams *ServiceParams, ok bool) {
	var err error
	if seed, err = url2.ParseUint64(params.ByName("seed")); err != nil {
		log.WithError(err).WithField("seed", params.ByName("seed")).Error("Invalid seed")
		http.Error(w, "invalid seed", http.StatusBadRequest)
		return
	}
	if serviceParams, err = ParseServiceParams(request.URL.Query(), cs.cfg.Samples); err != nil {
		log.WithError(err).Error("Invalid parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (cs *Service) GetHistogram(
	w http.ResponseWriter,
	request *http.Request,
	params httprouter.Params,
) {
	startTime := time.Now()
	seed, serviceParams, ok := cs.parseRequest(w, request, params)
	if !ok {
		return
	}
	report := cs.Report(seed, serviceParams.Samples)
	title := fmt.Sprintf("Byte histogram, seed %#x", seed)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderChart(w, report, title, serviceParams.Refresh); err != nil {
		log.WithError(err).Error("Error rendering chart")
	}
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"samples":     serviceParams.Samples,
		"path":        request.URL,
		"seed":        seed,
	}).Println("Chart request")
}

func (cs *Service) GetReport(
	w http.ResponseWriter,
	request *http.Request,
	params httprouter.Params,
) {
	seed, serviceParams, ok := cs.parseRequest(w, request, params)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cs.Report(seed, serviceParams.Samples)); err != nil {
		log.WithError(err).Error("Error encoding report")
	}
}

func (cs *Service) GetBytes(
	w http.ResponseWriter,
	request *http.Request,
	params httprouter.Params,
) {
	seed, err := url2.ParseUint64(params.ByName("seed"))
	if err != nil {
		http.Error(w, "invalid seed", http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(params.ByName("count"))
	if err != nil || count < 0 || count > cs.cfg.MaxBytes {
		http.Error(w, "invalid count", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(count))
	if _, err := w.Write(xorwow.NewSeeded(seed).Bytes(count)); err != nil {
		log.WithError(err).Error("Error writing bytes")
	}
	log.WithFields(log.Fields{
		"count": count,
		"seed":  seed,
		"path":  request.URL,
	}).Debug("Bytes request")
}
