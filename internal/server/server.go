package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"connectrpc.com/connect"

	deckv1 "invertdeck/backend/gen/go/deck"
	"invertdeck/backend/gen/go/deck/deckv1connect"
	"invertdeck/backend/internal/domain"
)

// Processor runs the full pipeline over uploaded sources.
type Processor interface {
	Execute(ctx context.Context, sources []domain.Source) (domain.Result, error)
}

// Inspector reports page metadata for uploaded sources.
type Inspector interface {
	Execute(ctx context.Context, sources []domain.Source) ([]domain.DocumentInfo, error)
}

type Options struct {
	AllowedOrigin  string
	MaxUploadBytes int64
	// Health reports whether the process is ready to serve. Nil means always.
	Health func() error
}

var _ deckv1connect.DeckServiceHandler = (*Server)(nil)

type Server struct {
	process Processor
	inspect Inspector
	opts    Options
	log     *slog.Logger
}

func New(process Processor, inspect Inspector, opts Options, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Server{process: process, inspect: inspect, opts: opts, log: log}
}

// Handler returns the routes of the service wrapped in CORS handling.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	path, handler := deckv1connect.NewDeckServiceHandler(s, connect.WithReadMaxBytes(int(s.opts.MaxUploadBytes)))
	mux.Handle(path, handler)
	mux.HandleFunc("POST /process", s.handleUpload)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return corsMiddleware(s.opts.AllowedOrigin, mux)
}

func (s *Server) Process(
	ctx context.Context,
	req *connect.Request[deckv1.ProcessRequest],
) (*connect.Response[deckv1.ProcessResponse], error) {
	s.log.Info("rpc.process", "files", len(req.Msg.GetFiles()))

	res, err := s.process.Execute(ctx, toSources(req.Msg.GetFiles()))
	if err != nil {
		return nil, connect.NewError(codeFor(err), err)
	}

	return connect.NewResponse(&deckv1.ProcessResponse{
		Message:     "inverted slides packed",
		Id:          res.ID,
		Filename:    res.ArchiveName,
		Archive:     res.Archive,
		Sheets:      int32(res.Sheets),
		SourcePages: int32(res.SourcePages),
	}), nil
}

func (s *Server) Inspect(
	ctx context.Context,
	req *connect.Request[deckv1.InspectRequest],
) (*connect.Response[deckv1.InspectResponse], error) {
	s.log.Info("rpc.inspect", "files", len(req.Msg.GetFiles()))

	infos, err := s.inspect.Execute(ctx, toSources(req.Msg.GetFiles()))
	if err != nil {
		return nil, connect.NewError(codeFor(err), err)
	}
	return connect.NewResponse(&deckv1.InspectResponse{Documents: toDocumentInfos(infos)}), nil
}

// handleUpload accepts a multipart form with one or more files in the
// "pdfs" field and answers with the zip archive.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File[UploadFieldName]
	if len(headers) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	sources := make([]domain.Source, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, "cannot read upload", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			http.Error(w, "cannot read upload", http.StatusBadRequest)
			return
		}
		sources = append(sources, domain.Source{Name: fh.Filename, Data: data})
	}

	s.log.Info("http.process", "files", len(sources))

	res, err := s.process.Execute(r.Context(), sources)
	if err != nil {
		s.log.Warn("http.process_failed", "kind", domain.KindOf(err), "err", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}

	w.Header().Set("Content-Type", zipContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.ArchiveName))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Archive)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Archive)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if s.opts.Health != nil {
		if err := s.opts.Health(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func codeFor(err error) connect.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	}
	switch domain.KindOf(err) {
	case domain.KindDocumentOpen, domain.KindEmptyInput:
		return connect.CodeInvalidArgument
	default:
		return connect.CodeInternal
	}
}

func httpStatus(err error) int {
	switch domain.KindOf(err) {
	case domain.KindDocumentOpen, domain.KindEmptyInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func corsMiddleware(origin string, next http.Handler) http.Handler {
	if origin == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves h on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server.listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("server.shutdown")
		return srv.Shutdown(shutdownCtx)
	}
}
