package clients

// StoreImageResolver composes store picture URLs. Pictures are shared
// across languages, so the path is not language-scoped.
type StoreImageResolver struct {
	baseURL string
}

func NewStoreImageResolver(baseURL string) *StoreImageResolver {
	return &StoreImageResolver{baseURL: baseURL}
}

// ImageURL returns the full URL for imageName, or an empty string when the
// name is empty.
func (r *StoreImageResolver) ImageURL(imageName string) string {
	if imageName == "" {
		return ""
	}
	return r.baseURL + "/" + storePicsPath + "/" + imageName
}
