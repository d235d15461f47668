/*
Package multipart loads a multipart/form-data request body into an ordered,
request-scoped collection and converts that collection into application structs.

Load consumes the body part by part.
Parts carrying no Content-Type - or text/plain - buffer in memory as Text fields.
Every other part streams to a uniquely named temporary file and surfaces as a File.
Separate budgets cap the total bytes of text and of files;
blowing either budget aborts the load and removes any temporary file already written.

A loaded Form accumulates repeated field names in the order received;
a later part never overwrites an earlier one with the same name.
Call Form.Close once the request is done with it to remove the temporary files.

Decode converts a Form into a struct using "multipart" struct tags,
or a type can implement FromForm to convert itself.
Conversion failures surface as *GetError naming the offending field.
*/
package multipart
