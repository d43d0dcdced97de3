package http

import "ai-scheduler/internal/auth"

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{Code: r.Code, State: r.State}
}

type startResp struct {
	URL string `json:"url"`
}

type meResp struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

func (h *handler) newStartResp(o auth.StartOutput) startResp {
	return startResp{URL: o.URL}
}

func (h *handler) newMeResp(o auth.MeOutput) meResp {
	return meResp{Authenticated: true, Email: o.Email}
}
