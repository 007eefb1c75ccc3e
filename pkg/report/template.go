package report

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Node Usage Report</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .header {
            background: #2c6fbb;
            color: white;
            padding: 30px;
            border-radius: 8px;
            margin-bottom: 20px;
        }
        .header h1 {
            margin: 0 0 10px 0;
        }
        .header .meta {
            opacity: 0.9;
            font-size: 14px;
        }
        .content {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            margin-bottom: 20px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
        }
        th, td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        th {
            background-color: #f8f9fa;
            font-weight: 600;
        }
        tr:hover {
            background-color: #f8f9fa;
        }
        td.warning {
            background-color: #c0392b;
            color: white;
            font-weight: bold;
        }
        .footer {
            text-align: center;
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #ddd;
            color: #666;
            font-size: 14px;
        }
        h2 {
            color: #333;
            border-bottom: 2px solid #2c6fbb;
            padding-bottom: 10px;
            margin-top: 0;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Node Usage Report</h1>
        <div class="meta">
            <strong>Nodes:</strong> {{.NodeCount}}<br>
            <strong>Generated:</strong> {{.GeneratedAt}}
        </div>
    </div>

    <div class="content">
        <h2>Disk Usage</h2>
        <table>
            <tr>
                <th>Instance</th>
                <th>Device</th>
                <th>Mount Point</th>
                <th>Size</th>
                <th>Used</th>
                <th>Free</th>
                <th>Usage</th>
            </tr>
            {{range .Disks}}
            <tr>
                <td>{{.Instance}}</td>
                <td>{{.Device}}</td>
                <td>{{.MountPoint}}</td>
                <td>{{.Size}}</td>
                <td>{{.Used}}</td>
                <td>{{.Free}}</td>
                <td{{if .Usage.Warning}} class="warning"{{end}}>{{.Usage.Text}}</td>
            </tr>
            {{end}}
        </table>
    </div>

    <div class="content">
        <h2>CPU Usage</h2>
        <table>
            <tr>
                <th>Instance</th>
                <th>Cores</th>
                <th>Usage</th>
            </tr>
            {{range .Cpus}}
            <tr>
                <td>{{.Instance}}</td>
                <td>{{.CoreNum}}</td>
                <td{{if .Usage.Warning}} class="warning"{{end}}>{{.Usage.Text}}</td>
            </tr>
            {{end}}
        </table>
    </div>

    <div class="content">
        <h2>Memory Usage</h2>
        <table>
            <tr>
                <th>Instance</th>
                <th>Total</th>
                <th>Used</th>
                <th>Usage</th>
            </tr>
            {{range .Mems}}
            <tr>
                <td>{{.Instance}}</td>
                <td>{{.Total}}</td>
                <td>{{.Used}}</td>
                <td{{if .Usage.Warning}} class="warning"{{end}}>{{.Usage.Text}}</td>
            </tr>
            {{end}}
        </table>
    </div>

    <div class="content">
        <h2>Network Throughput</h2>
        <table>
            <tr>
                <th>Instance</th>
                <th>Download</th>
                <th>Upload</th>
            </tr>
            {{range .Nets}}
            <tr>
                <td>{{.Instance}}</td>
                <td>{{.Download}}</td>
                <td>{{.Upload}}</td>
            </tr>
            {{end}}
        </table>
    </div>

    <div class="footer">
        <p>Generated by <a href="https://github.com/flipped-1121/prometheus-notice">prometheus-notice</a> - {{.CompanyName}}</p>
    </div>
</body>
</html>`
