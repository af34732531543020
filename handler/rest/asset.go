package rest

import (
	"context"
	"net/http"

	"oasis/core"
	"oasis/handler/param"
	"oasis/handler/render"
	"oasis/handler/views"
)

// findOrCreateBrowse restores the caller's browse session, handing
// out a fresh empty one when the id is absent or expired.
func findOrCreateBrowse(ctx context.Context, sessionStr core.ISessionStore, id string) (*core.BrowseSession, error) {
	if id != "" {
		if session, err := sessionStr.FindBrowse(ctx, id); err == nil {
			return session, nil
		}
	}

	return sessionStr.CreateBrowse(ctx)
}

func assetsHandler(sessionStr core.ISessionStore, browseSrv core.IBrowseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
			Search  string `json:"search"`
			Type    string `json:"type"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		session, err := findOrCreateBrowse(ctx, sessionStr, params.Session)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		browseSrv.SetSearchTerm(session, params.Search)

		if params.Type != "" {
			if err := browseSrv.SetTypeFilter(session, core.TypeFilter(params.Type)); err != nil {
				renderErr(w, err)
				return
			}
		}

		assets, err := browseSrv.VisibleAssets(ctx, session)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := sessionStr.SaveBrowse(ctx, session); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewBrowse(session, assets))
	}
}
