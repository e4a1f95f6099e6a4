package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Attendance API",
        "description": "Class attendance recording, summaries and low-attendance notifications",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Course, subject and roster lookups"},
        {"name": "Attendance", "description": "Submission, reports and history"},
        {"name": "Students", "description": "Student profiles"},
        {"name": "Notifications", "description": "Low-attendance warnings"}
    ],
    "paths": {
        "/catalog/subjects": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List subjects for a course and semester",
                "parameters": [
                    {"name": "course", "in": "query", "type": "string", "required": true},
                    {"name": "semester", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Subjects"},
                    "400": {"description": "Missing fields"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/catalog/students": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List students for a class and semester",
                "parameters": [
                    {"name": "className", "in": "query", "type": "string", "required": true},
                    {"name": "semesterId", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Students sorted by name"},
                    "400": {"description": "Missing fields"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/attendance": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Submit a batch of daily attendance marks",
                "responses": {
                    "201": {"description": "Submitted"},
                    "400": {"description": "Missing fields"}
                }
            }
        },
        "/attendance/report": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Per-student attendance for a course, semester and subject",
                "responses": {
                    "200": {"description": "Report rows"},
                    "404": {"description": "No students found"}
                }
            }
        },
        "/attendance/report/export": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Download the report as CSV or PDF",
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "No students found"}
                }
            }
        },
        "/attendance/students/{studentId}/{subject}/{semester}/{academicYear}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "A student's ordered attendance history for a subject",
                "responses": {
                    "200": {"description": "History entries"},
                    "404": {"description": "No records"}
                }
            }
        },
        "/attendance/summaries/{studentId}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "A student's stored attendance summaries",
                "responses": {
                    "200": {"description": "Summaries"}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student profile",
                "responses": {
                    "200": {"description": "Student"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/notifications/low-attendance": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Email students below the attendance threshold",
                "responses": {
                    "200": {"description": "Delivery counts"},
                    "400": {"description": "Missing data"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
