package models

// ProductCopyRequest defines the structure for requests to the product copy
// generator.
type ProductCopyRequest struct {
	ProductName        string   `json:"productName"`
	ProductDescription string   `json:"productDescription"`
	Persona            string   `json:"persona"`
	Reviews            []string `json:"reviews,omitempty"`
}

// ProductCopyResponse carries the assembled prompt and the generated text.
type ProductCopyResponse struct {
	Prompt        string `json:"prompt"`
	GeneratedText string `json:"generatedText"`
}
