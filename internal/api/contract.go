package api

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValueResponse carries a scalar statistic (mean, mode).
type ValueResponse struct {
	Value int `json:"value"`
}

type QuartilesResponse struct {
	Quartile1 int `json:"quartile_1"`
	Quartile3 int `json:"quartile_3"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
