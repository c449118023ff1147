package image

// Schema is the JSON schema for session image files
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tags"],
  "additionalProperties": false,
  "definitions": {
    "signature": {
      "type": "string",
      "pattern": "^([\\x20-\\x7e]{4}|0[xX][0-9a-fA-F]{1,8})$"
    },
    "offset": {
      "type": "integer",
      "minimum": 0,
      "maximum": 4294967295
    }
  },
  "properties": {
    "buffer": {
      "type": ["string", "null"],
      "contentEncoding": "base64"
    },
    "playback": {
      "type": "object",
      "propertyNames": {"$ref": "#/definitions/signature"},
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "total_items": {"$ref": "#/definitions/offset"},
          "total_size": {"$ref": "#/definitions/offset"},
          "current_offset": {"$ref": "#/definitions/offset"}
        }
      }
    },
    "tags": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["signature"],
        "additionalProperties": false,
        "properties": {
          "signature": {"$ref": "#/definitions/signature"},
          "name": {"type": ["string", "null"]},
          "description": {"type": ["string", "null"]},
          "partitions": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["signature", "current_offset"],
              "additionalProperties": false,
              "properties": {
                "signature": {"$ref": "#/definitions/signature"},
                "current_offset": {"$ref": "#/definitions/offset"}
              }
            }
          }
        }
      }
    }
  }
}`
