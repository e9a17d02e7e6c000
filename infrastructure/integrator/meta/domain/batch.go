package metadomain

// BatchRequest é um item do campo "batch" enviado ao Graph
type BatchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

type BatchHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BatchResponse é a resposta de um item do batch. O corpo vem como string JSON.
type BatchResponse struct {
	Code    int           `json:"code"`
	Headers []BatchHeader `json:"headers"`
	Body    string        `json:"body"`
}
