package models

// BlogPost is one generated article, stored in the blog JSON file.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ReadTime string `json:"readTime"`
	Image    string `json:"image"`
}
