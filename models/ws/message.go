package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Msg      string `json:"msg"`
	Url      string `json:"url,omitempty"`
}
