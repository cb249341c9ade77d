// Package catalog holds the fixed layout of the generated project: the
// folders created under the project root and the files written into it.
// Both tables are immutable; accessors hand out copies.
package catalog

// Folder is a directory created under the project root.
type Folder struct {
	Path        string // slash-separated, relative to the root
	Description string
}

// File is a file written under the project root with exact content.
type File struct {
	Path    string // slash-separated, relative to the root
	Content string
}

var folders = []Folder{
	{"config", "application settings"},
	{"models", "trained model artifacts"},
	{"data/raw", "untouched input data"},
	{"data/processed", "cleaned and feature-engineered data"},
	{"notebooks", "exploration notebooks"},
	{"src", "preprocessing, training and prediction code"},
	{"static/css", "stylesheets served by the web app"},
	{"templates", "HTML page templates"},
	{"tests", "unit tests"},
}

var files = []File{
	{"app.py", appPy},
	{"requirements.txt", requirementsTxt},
	{"Procfile", procfile},
	{"runtime.txt", runtimeTxt},
	{"README.md", readmeMD},
	{".gitignore", gitignore},
	{"config/config.py", configPy},
	{"src/__init__.py", ""},
	{"src/preprocessing.py", "# Data preprocessing logic\n"},
	{"src/train.py", "# Model training logic\n"},
	{"src/predict.py", "# Prediction logic\n"},
	{"models/model.pkl", ""},
	{"static/css/style.css", styleCSS},
	{"templates/layout.html", layoutHTML},
	{"templates/home.html", homeHTML},
	{"templates/result.html", resultHTML},
	{"tests/test_app.py", "# Unit tests\n"},
}

// Folders returns the Folder List in creation order.
func Folders() []Folder {
	out := make([]Folder, len(folders))
	copy(out, folders)
	return out
}

// Files returns the File Catalog in a stable order.
func Files() []File {
	out := make([]File, len(files))
	copy(out, files)
	return out
}

// Lookup returns the catalog content for path.
func Lookup(path string) (string, bool) {
	for _, f := range files {
		if f.Path == path {
			return f.Content, true
		}
	}
	return "", false
}
