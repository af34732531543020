package rest

import (
	"net/http"

	"oasis/core"
	"oasis/handler/param"
	"oasis/handler/render"
)

func toggleHandler(sessionStr core.ISessionStore, browseSrv core.IBrowseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session  string `json:"session"`
			Asset    string `json:"asset"`
			Selected bool   `json:"selected"`
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

		browseSrv.ToggleSelected(session, params.Asset, params.Selected)

		if err := sessionStr.SaveBrowse(ctx, session); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"session_id": session.ID,
			"selected":   session.Selected,
		})
	}
}

func clearHandler(sessionStr core.ISessionStore, browseSrv core.IBrowseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
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

		browseSrv.ClearSelection(session)

		if err := sessionStr.SaveBrowse(ctx, session); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"session_id": session.ID,
			"selected":   session.Selected,
		})
	}
}

func checkoutURLHandler(sessionStr core.ISessionStore, transferSrv core.ITransferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		session, err := sessionStr.FindBrowse(ctx, params.Session)
		if err != nil {
			renderErr(w, err)
			return
		}

		token := transferSrv.Serialize(session.Selected)

		render.JSON(w, render.H{
			"session_id": session.ID,
			"url":        "/purchase?assets=" + token,
			"count":      len(session.Selected),
		})
	}
}
