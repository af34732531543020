package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"oasis/handler/hc"
	"oasis/handler/rest"
	"oasis/service/browse"
	"oasis/service/catalog"
	"oasis/service/checkout"
	"oasis/service/payment"
	"oasis/service/transfer"
	assetstore "oasis/store/asset"
	sessionstore "oasis/store/session"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run oasis api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetStore := assetstore.New()
		sessionStore := sessionstore.New(cfg.Session.Capacity, time.Duration(cfg.Session.Expire)*time.Second)

		catalogSrv := catalog.New(assetStore)
		browseSrv := browse.New(catalogSrv)
		transferSrv := transfer.New(catalogSrv, cfg.Browse.MaxSelection)
		gateway := payment.New()
		checkoutSrv := checkout.New(gateway, cfg.Checkout.StrictQuantity)

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version))
		}

		{
			//restful api
			mux.Mount("/api", rest.Handle(sessionStore, catalogSrv, browseSrv, transferSrv, checkoutSrv))
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
}
