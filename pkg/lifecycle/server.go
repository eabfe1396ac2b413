/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/sirupsen/logrus"
)

const (
	ShutdownTimeout   = 10 * time.Second
	ReadHeaderTimeout = 5 * time.Second
)

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// Logger is the subset of a structured logger this package needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ServerOptions holds configuration for running a service.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Service     Service
	Handler     http.Handler
	Log         Logger
}

// RunServer starts a service plus its HTTP API and blocks until a
// shutdown signal, a service error, or context cancellation. When the
// process runs under systemd it reports readiness and feeds the unit
// watchdog.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	log.Infof("starting service %s", opts.ServiceName)

	ln, err := net.Listen("tcp", opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", opts.ListenAddr, err)
	}

	httpServer := &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           opts.Handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			select {
			case errChan <- err:
			default:
				log.Errorf("service error: %v", err)
			}
		}
	}()

	go func() {
		log.Infof("http server listening on %s", ln.Addr())

		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- err:
			default:
				log.Errorf("http server error: %v", err)
			}
		}
	}()

	notifyReady(log)

	go runWatchdog(ctx, log)

	return handleShutdown(ctx, cancel, httpServer, opts.Service, errChan, log)
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, srv *http.Server, svc Service, errChan chan error, log Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Infof("received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Errorf("received error: %v, initiating shutdown", err)
		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Infof("context canceled, initiating shutdown")
		runErr = ctx.Err()
	}

	notifyStopping(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("http server shutdown: %v", err)
	}

	if err := svc.Stop(shutdownCtx); err != nil {
		log.Errorf("error during service shutdown: %v", err)

		if runErr == nil {
			runErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	return runErr
}

// notifyReady tells systemd the unit is accepting requests. Outside of
// systemd (NOTIFY_SOCKET unset) it is a no-op.
func notifyReady(log Logger) {
	ok, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		log.Warnf("failed to notify systemd of readiness: %v", err)
		return
	}

	if ok {
		log.Debugf("notified systemd of readiness")
	}
}

func notifyStopping(log Logger) {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		log.Warnf("failed to notify systemd of shutdown: %v", err)
	}
}

// runWatchdog feeds the systemd watchdog when one is armed for the
// unit. Stops when the run context ends.
func runWatchdog(ctx context.Context, log Logger) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval == 0 {
		return
	}

	interval /= 2
	log.Debugf("feeding systemd watchdog every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog); err != nil {
				log.Warnf("failed to feed systemd watchdog: %v", err)
			}
		}
	}
}
