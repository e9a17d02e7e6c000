package metadomain

type AdAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ResponseAdAccount struct {
	Data   []AdAccount `json:"data"`
	Paging Paging      `json:"paging"`
}
