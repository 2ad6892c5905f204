package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/utils/images"
)

// ImageHandler serves the presentation endpoint the storefront templates
// poll for progressive product images: low-quality CDN rendition first, the
// origin image once probed, plus any EXIF-derived rotation.
type ImageHandler struct {
	resolver images.Resolver
	client   *http.Client
	render   *render.Render
}

func NewImageHandler(resolver images.Resolver, client *http.Client, r *render.Render) *ImageHandler {
	return &ImageHandler{resolver: resolver, client: client, render: r}
}

type presentationResponse struct {
	Source      string `json:"source"`
	OriginURL   string `json:"origin_url"`
	CDNURL      string `json:"cdn_url"`
	Progressive bool   `json:"progressive"`
	images.Presentation
}

func (h *ImageHandler) Presentation(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("src")
	res := h.resolver.Resolve(src)

	enableExif := r.URL.Query().Get("exif") == "1"
	blur := r.URL.Query().Get("blur") != "0"

	loader := images.NewLoader(h.client, enableExif, blur)
	defer loader.Close()

	// server side the probe runs to completion before answering, so the
	// response already carries the final display URL and rotation
	loader.SetSource(r.Context(), res)
	loader.Wait()

	_ = h.render.JSON(w, http.StatusOK, presentationResponse{
		Source:       res.Source,
		OriginURL:    res.Origin,
		CDNURL:       res.CDN,
		Progressive:  res.Progressive(),
		Presentation: loader.Snapshot(),
	})
}
