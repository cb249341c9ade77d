package catalog

const appPy = `from flask import Flask, render_template, request
import os

app = Flask(__name__)

@app.route('/')
def home():
    return render_template('home.html')

@app.route('/predict', methods=['POST'])
def predict():
    return render_template('result.html', prediction="Sample Prediction")

if __name__ == '__main__':
    port = int(os.environ.get("PORT", 5000))
    app.run(host='0.0.0.0', port=port, debug=True)
`

const requirementsTxt = "flask\nnumpy\npandas\nscikit-learn\n"

const procfile = "web: python app.py"

const runtimeTxt = "python-3.10.12"

const readmeMD = "# AI/ML Deployment Project\n\nDeployable on AWS, Heroku, or Azure."

const gitignore = `__pycache__/
env/
venv/
*.pkl
*.pyc
.DS_Store
`

const configPy = "DEBUG = True\nMODEL_PATH = 'models/model.pkl'\n"

const styleCSS = "body { font-family: Arial; }"

const layoutHTML = `<!DOCTYPE html>
<html>
<head>
    <title>AI App</title>
    <link rel="stylesheet" href="{{ url_for('static', filename='css/style.css') }}">
</head>
<body>
    {% block content %}{% endblock %}
</body>
</html>
`

const homeHTML = `{% extends 'layout.html' %}
{% block content %}
<h1>AI/ML Project</h1>
<form action="/predict" method="post">
    <button type="submit">Predict</button>
</form>
{% endblock %}
`

const resultHTML = `{% extends 'layout.html' %}
{% block content %}
<h2>Prediction Result</h2>
<p>{{ prediction }}</p>
{% endblock %}
`
