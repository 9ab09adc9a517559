package render

import "fmt"

// documentTemplate wraps a rendered HTML fragment in a complete HTML5
// document. It carries two stylesheets: a screen stylesheet for preview and
// an @media print block that zeroes page margins, forces exact color
// reproduction, and keeps headings, tables, code blocks, and blockquotes
// from being split across page boundaries.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta name="color-scheme" content="light">
<meta name="print-color-adjust" content="exact">
<title>Document</title>
<style>
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica Neue', 'Hiragino Sans', Arial, 'Meiryo', sans-serif;
    line-height: 1.6;
    color: #333;
    max-width: 900px;
    margin: 20px auto;
    padding: 20px;
    background: white;
}
h1, h2, h3, h4, h5, h6 {
    margin-top: 24px;
    margin-bottom: 16px;
    font-weight: 600;
    line-height: 1.25;
}
h1 { font-size: 2em; border-bottom: 1px solid #eaecef; padding-bottom: .3em; }
h2 { font-size: 1.5em; border-bottom: 1px solid #eaecef; padding-bottom: .3em; }
h3 { font-size: 1.25em; }
code {
    background-color: rgba(27,31,35,.05);
    border-radius: 3px;
    font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    font-size: 85%%;
    margin: 0;
    padding: .2em .4em;
}
pre {
    background-color: #f6f8fa;
    border-radius: 3px;
    font-size: 85%%;
    line-height: 1.45;
    overflow: auto;
    padding: 16px;
}
pre code {
    background-color: transparent;
    border: 0;
    display: inline;
    line-height: inherit;
    margin: 0;
    overflow: visible;
    padding: 0;
    word-wrap: normal;
}
table {
    border-collapse: collapse;
    margin: 16px 0;
    width: 100%%;
    display: table;
}
table th, table td {
    border: 1px solid #dfe2e5;
    padding: 6px 13px;
}
table th {
    background-color: #f6f8fa;
    font-weight: 600;
}
blockquote {
    border-left: 4px solid #dfe2e5;
    color: #6a737d;
    padding-left: 16px;
    margin: 16px 0;
}
img {
    max-width: 100%%;
    height: auto;
    -webkit-print-color-adjust: exact !important;
    print-color-adjust: exact !important;
}
dt { font-weight: 600; margin-top: 8px; }
dd { margin-left: 24px; }
nav.toc {
    background-color: #f8f9fa;
    border: 1px solid #e9ecef;
    border-radius: 4px;
    padding: 12px 16px;
    margin: 16px 0;
}
nav.toc a { color: #0366d6; text-decoration: none; }
.mermaid {
    text-align: center;
    margin: 16px 0;
    padding: 16px;
    background-color: #f8f9fa;
    border: 1px solid #e9ecef;
    border-radius: 4px;
}
@media print {
    body {
        margin: 0;
        padding: 10mm;
        font-size: 10pt;
        color: #333 !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    .page-break {
        page-break-after: always;
        break-after: page;
    }
    h1, h2, h3 {
        page-break-after: avoid;
        color: #333 !important;
    }
    pre, table, blockquote {
        page-break-inside: avoid;
    }
    code {
        background-color: rgba(27,31,35,.05) !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    pre {
        background-color: #f6f8fa !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    table th {
        background-color: #f6f8fa !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    blockquote {
        border-left: 4px solid #dfe2e5 !important;
        color: #6a737d !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    .mermaid {
        background-color: #f8f9fa !important;
        border: 1px solid #e9ecef !important;
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
    * {
        -webkit-print-color-adjust: exact !important;
        print-color-adjust: exact !important;
    }
}
</style>
</head>
<body>
%s
</body>
</html>
`

// WrapDocument embeds an HTML fragment into the fixed document template.
// The template is constant, so output depends only on the fragment.
func WrapDocument(fragment string) string {
	return fmt.Sprintf(documentTemplate, fragment)
}
